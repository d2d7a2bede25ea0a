package domain

import "time"

type SaleSource string

const (
	SaleSourceWebhook   SaleSource = "WEBHOOK"
	SaleSourceCSVImport SaleSource = "CSV_IMPORT"
)

// SaleRecord is one append-only ledger entry for an external sale.
// ExternalSaleID is the dedup key: the ledger never holds two records with
// the same value, enforced by a unique index at the storage layer.
type SaleRecord struct {
	ID             string
	ExternalSaleID string
	ProductName    string
	SaleAmount     float64
	AffiliateID    string
	BuyerEmail     string
	SaleDate       time.Time
	ProjectID      string
	CommissionPool float64
	Source         SaleSource
	CreatedAt      time.Time
}

type SaleRepository interface {
	// RecordSaleWithSplits writes the sale and all of its splits in one
	// transaction. Returns ErrDuplicateSale when the external sale id is
	// already present; nothing is written in that case.
	RecordSaleWithSplits(sale *SaleRecord, splits []*CommissionSplit) error
	GetSaleByExternalID(externalSaleID string) (*SaleRecord, error)
	GetSaleByID(saleID string) (*SaleRecord, error)
	GetSalesByIDs(saleIDs []string) ([]*SaleRecord, error)
}
