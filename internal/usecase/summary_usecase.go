package usecase

import (
	"github.com/clipwave/commission-service/internal/domain"
)

// directSalesBucket is the virtual project that groups a contributor's
// unattributed direct webhook sales in the projects count.
const directSalesBucket = "__direct__"

type DefaultSummaryUsecase struct {
	splitRepo  domain.SplitRepository
	saleRepo   domain.SaleRepository
	payoutRepo domain.PayoutRepository
}

func NewDefaultSummaryUsecase(
	splitRepo domain.SplitRepository,
	saleRepo domain.SaleRepository,
	payoutRepo domain.PayoutRepository,
) *DefaultSummaryUsecase {
	return &DefaultSummaryUsecase{
		splitRepo:  splitRepo,
		saleRepo:   saleRepo,
		payoutRepo: payoutRepo,
	}
}

// ComputeContributorSummary rolls up a contributor's lifetime earnings and
// what is still owed. Recomputed from the ledger on every call.
func (uc *DefaultSummaryUsecase) ComputeContributorSummary(contributorID string) (*domain.ContributorSummary, error) {
	splits, err := uc.splitRepo.GetSplitsByContributorID(contributorID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ContributorSummary{ContributorID: contributorID}

	saleIDs := make([]string, 0, len(splits))
	seenSales := make(map[string]bool, len(splits))
	for _, split := range splits {
		summary.TotalCommission += split.CommissionAmount
		if !seenSales[split.SaleID] {
			seenSales[split.SaleID] = true
			saleIDs = append(saleIDs, split.SaleID)
		}
	}
	summary.TotalCommission = RoundToCents(summary.TotalCommission)

	sales, err := uc.saleRepo.GetSalesByIDs(saleIDs)
	if err != nil {
		return nil, err
	}
	projects := make(map[string]bool)
	for _, sale := range sales {
		summary.TotalSales += sale.SaleAmount
		if sale.ProjectID != "" {
			projects[sale.ProjectID] = true
		} else {
			projects[directSalesBucket] = true
		}
	}
	summary.TotalSales = RoundToCents(summary.TotalSales)
	summary.ProjectsCount = len(projects)

	payouts, err := uc.payoutRepo.GetPayoutsByContributorID(contributorID)
	if err != nil {
		return nil, err
	}
	var paid float64
	for _, payout := range payouts {
		if payout.Status == domain.PayoutCompleted {
			paid += payout.Amount
		}
	}

	// Negative pending payout means an overpayment was recorded; surfaced
	// as-is rather than clamped so the inconsistency is visible.
	summary.PendingPayout = RoundToCents(summary.TotalCommission - paid)

	return summary, nil
}
