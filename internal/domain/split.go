package domain

import "time"

// CommissionSplit is one contributor's share of a sale's commission pool.
// Splits are written once at ingestion and never mutated; corrections are a
// separate adjustment record, not an update.
type CommissionSplit struct {
	ID                   string
	SaleID               string
	ContributorID        string
	CommissionAmount     float64
	CommissionPercentage float64
	CalculatedAt         time.Time
}

type SplitRepository interface {
	GetSplitsByContributorID(contributorID string) ([]*CommissionSplit, error)
	GetSplitsBySaleID(saleID string) ([]*CommissionSplit, error)
}
