package usecase

import (
	"testing"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayoutDefaults(t *testing.T) {
	repo := newFakePayoutRepo()
	uc := NewDefaultPayoutUsecase(repo)

	created, err := uc.CreatePayout(adminCaller, &domain.PayoutRecord{
		ContributorID: "c1",
		Amount:        75.00,
		Notes:         "February payout",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.PayoutPending, created.Status)
	assert.False(t, created.PayoutDate.IsZero())
}

func TestCreatePayoutValidation(t *testing.T) {
	uc := NewDefaultPayoutUsecase(newFakePayoutRepo())

	_, err := uc.CreatePayout(adminCaller, &domain.PayoutRecord{Amount: 10})
	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)

	_, err = uc.CreatePayout(adminCaller, &domain.PayoutRecord{ContributorID: "c1", Amount: 0})
	assert.ErrorAs(t, err, &missing)

	_, err = uc.CreatePayout(domain.Caller{ID: "u", Roles: []string{domain.RoleContributor}}, &domain.PayoutRecord{ContributorID: "c1", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUpdatePayoutStatusTransitions(t *testing.T) {
	repo := newFakePayoutRepo()
	uc := NewDefaultPayoutUsecase(repo)

	created, err := uc.CreatePayout(adminCaller, &domain.PayoutRecord{ContributorID: "c1", Amount: 40})
	require.NoError(t, err)

	require.NoError(t, uc.UpdatePayoutStatus(adminCaller, created.ID, domain.PayoutCompleted))

	stored, err := repo.GetPayoutByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutCompleted, stored.Status)

	// Completed payouts are immutable.
	err = uc.UpdatePayoutStatus(adminCaller, created.ID, domain.PayoutFailed)
	assert.ErrorIs(t, err, domain.ErrPayoutImmutable)
}

func TestUpdatePayoutStatusRejectsPending(t *testing.T) {
	repo := newFakePayoutRepo()
	uc := NewDefaultPayoutUsecase(repo)

	created, err := uc.CreatePayout(adminCaller, &domain.PayoutRecord{ContributorID: "c1", Amount: 40})
	require.NoError(t, err)

	err = uc.UpdatePayoutStatus(adminCaller, created.ID, domain.PayoutPending)
	assert.ErrorIs(t, err, domain.ErrInvalidPayoutStatus)
}

func TestUpdatePayoutStatusNotFound(t *testing.T) {
	uc := NewDefaultPayoutUsecase(newFakePayoutRepo())

	err := uc.UpdatePayoutStatus(adminCaller, "missing", domain.PayoutCompleted)
	assert.ErrorIs(t, err, domain.ErrPayoutNotFound)
}
