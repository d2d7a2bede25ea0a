package kafka

// SaleRecordedEvent is published after a sale and its splits are committed.
// Downstream dashboards consume it instead of polling the ledger.
type SaleRecordedEvent struct {
	SaleID         string  `json:"sale_id"`
	ExternalSaleID string  `json:"external_sale_id"`
	Source         string  `json:"source"`
	ProjectID      string  `json:"project_id,omitempty"`
	SaleAmount     float64 `json:"sale_amount"`
	CommissionPool float64 `json:"commission_pool"`
	SplitCount     int     `json:"split_count"`
}
