package request

// ImportSalesRequest matches the admin UI's bulk-import call. VideoID is the
// project the CSV rows are attributed to.
type ImportSalesRequest struct {
	CSVData string `json:"csvData"`
	VideoID string `json:"videoId"`
}

type CreatePayoutRequest struct {
	Amount     float64 `json:"amount"`
	PayoutDate string  `json:"payoutDate,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

type UpdatePayoutStatusRequest struct {
	Status string `json:"status"`
}

type AddContributorRequest struct {
	ContributorID        string  `json:"contributorId"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	Role                 string  `json:"role"`
}

type VerifyLinkRequest struct {
	URL string `json:"url"`
}

type RegisterAffiliateLinkRequest struct {
	ContributorID string `json:"contributorId"`
	AffiliateLink string `json:"affiliateLink"`
}
