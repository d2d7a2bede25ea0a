package saledto

// WebhookSalePayload mirrors the partner platform's sale notification body.
// Only type == "paid" events carry revenue; everything else is a no-op.
type WebhookSalePayload struct {
	Type          string  `json:"type"`
	SaleID        string  `json:"sale_id"`
	ProductName   string  `json:"product_name"`
	SaleAmount    float64 `json:"sale_amount"`
	AffiliateID   string  `json:"affiliate_id"`
	AffiliateLink string  `json:"affiliate_link"`
	BuyerEmail    string  `json:"buyer_email"`
	CustomerEmail string  `json:"customer_email"`
	Date          int64   `json:"date"`
}

// IngestResult reports the outcome of one webhook ingestion.
type IngestResult struct {
	Skipped          bool
	AlreadyProcessed bool
	Attributed       bool
	SaleID           string
	SplitID          string
	ContributorID    string
}
