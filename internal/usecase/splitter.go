package usecase

import (
	"math"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

// RoundToCents rounds a currency amount to two decimal places. Fractional
// cent discrepancies across a sale's splits are accepted, not redistributed.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

type SplitCalculator struct {
	flatRatePercent float64
}

func NewSplitCalculator(flatRatePercent float64) *SplitCalculator {
	if flatRatePercent <= 0 {
		flatRatePercent = DefaultFlatRatePercent
	}
	return &SplitCalculator{flatRatePercent: flatRatePercent}
}

// DirectSplit pays the whole commission pool to the one resolved affiliate.
// The flat rate is recorded on the split for audit.
func (c *SplitCalculator) DirectSplit(sale *domain.SaleRecord, contributorID string) ([]*domain.CommissionSplit, error) {
	if contributorID == "" {
		return nil, nil
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return []*domain.CommissionSplit{{
		ID:                   idGenerator(),
		ContributorID:        contributorID,
		CommissionAmount:     RoundToCents(sale.CommissionPool),
		CommissionPercentage: c.flatRatePercent,
		CalculatedAt:         time.Now().UTC(),
	}}, nil
}

// ProjectSplits pays each assigned contributor their percentage of the pool.
// Percentages apply to the commission pool, not the gross sale amount, and
// need not sum to 100; the unassigned remainder stays unallocated. A
// zero-percent assignment still yields a zero-amount split for audit.
func (c *SplitCalculator) ProjectSplits(sale *domain.SaleRecord, assignments []*domain.ProjectContributorAssignment) ([]*domain.CommissionSplit, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	calculatedAt := time.Now().UTC()
	splits := make([]*domain.CommissionSplit, 0, len(assignments))
	for _, assignment := range assignments {
		splits = append(splits, &domain.CommissionSplit{
			ID:                   idGenerator(),
			ContributorID:        assignment.ContributorID,
			CommissionAmount:     RoundToCents(sale.CommissionPool * assignment.CommissionPercentage / 100),
			CommissionPercentage: assignment.CommissionPercentage,
			CalculatedAt:         calculatedAt,
		})
	}
	return splits, nil
}
