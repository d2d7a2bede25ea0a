package usecase

import (
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type DefaultPayoutUsecase struct {
	payoutRepo domain.PayoutRepository
}

func NewDefaultPayoutUsecase(payoutRepo domain.PayoutRepository) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{payoutRepo: payoutRepo}
}

func (uc *DefaultPayoutUsecase) CreatePayout(caller domain.Caller, payout *domain.PayoutRecord) (*domain.PayoutRecord, error) {
	if !caller.HasRole(domain.RoleAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	if payout.ContributorID == "" {
		return nil, &domain.MissingFieldError{Field: "contributorId"}
	}
	if payout.Amount <= 0 {
		return nil, &domain.MissingFieldError{Field: "amount"}
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	payout.ID = idGenerator()
	payout.Status = domain.PayoutPending
	if payout.PayoutDate.IsZero() {
		payout.PayoutDate = now
	}
	payout.CreatedAt = now
	payout.UpdatedAt = now

	if err := uc.payoutRepo.CreatePayout(payout); err != nil {
		return nil, err
	}
	return payout, nil
}

// UpdatePayoutStatus moves a pending payout to completed or failed. Completed
// payouts are immutable; corrections require a new record.
func (uc *DefaultPayoutUsecase) UpdatePayoutStatus(caller domain.Caller, payoutID string, status domain.PayoutStatus) error {
	if !caller.HasRole(domain.RoleAdmin) {
		return domain.ErrPermissionDenied
	}
	if status != domain.PayoutCompleted && status != domain.PayoutFailed {
		return domain.ErrInvalidPayoutStatus
	}

	payout, err := uc.payoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return err
	}
	if payout.Status != domain.PayoutPending {
		return domain.ErrPayoutImmutable
	}

	return uc.payoutRepo.UpdatePayoutStatus(payoutID, status)
}

func (uc *DefaultPayoutUsecase) GetContributorPayouts(contributorID string) ([]*domain.PayoutRecord, error) {
	return uc.payoutRepo.GetPayoutsByContributorID(contributorID)
}
