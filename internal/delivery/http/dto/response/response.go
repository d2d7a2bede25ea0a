package response

import importdto "github.com/clipwave/commission-service/internal/usecase/dto/imports"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type WebhookResponse struct {
	Success      bool   `json:"success"`
	SaleID       string `json:"sale_id,omitempty"`
	CommissionID string `json:"commission_id,omitempty"`
	Message      string `json:"message"`
}

type ImportSalesResponse struct {
	Success    bool                   `json:"success"`
	Imported   int                    `json:"imported"`
	Duplicates int                    `json:"duplicates"`
	Total      int                    `json:"total"`
	Failures   []importdto.RowFailure `json:"failures,omitempty"`
}

type ContributorSummaryResponse struct {
	ContributorID   string  `json:"contributorId"`
	TotalCommission float64 `json:"totalCommission"`
	TotalSales      float64 `json:"totalSales"`
	PendingPayout   float64 `json:"pendingPayout"`
	ProjectsCount   int     `json:"projectsCount"`
}

type PayoutResponse struct {
	ID            string  `json:"id"`
	ContributorID string  `json:"contributorId"`
	Amount        float64 `json:"amount"`
	PayoutDate    string  `json:"payoutDate"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
}

type AssignmentResponse struct {
	ID                   string  `json:"id"`
	ProjectID            string  `json:"projectId"`
	ContributorID        string  `json:"contributorId"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	Role                 string  `json:"role"`
}
