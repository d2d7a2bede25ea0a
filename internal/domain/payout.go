package domain

import "time"

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "PENDING"
	PayoutCompleted PayoutStatus = "COMPLETED"
	PayoutFailed    PayoutStatus = "FAILED"
)

// PayoutRecord is an administrative record of money actually paid out.
// Amounts are immutable once the payout is completed.
type PayoutRecord struct {
	ID            string
	ContributorID string
	Amount        float64
	PayoutDate    time.Time
	Status        PayoutStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PayoutRepository interface {
	CreatePayout(payout *PayoutRecord) error
	GetPayoutByID(payoutID string) (*PayoutRecord, error)
	UpdatePayoutStatus(payoutID string, status PayoutStatus) error
	GetPayoutsByContributorID(contributorID string) ([]*PayoutRecord, error)
}

type PayoutUsecase interface {
	CreatePayout(caller Caller, payout *PayoutRecord) (*PayoutRecord, error)
	UpdatePayoutStatus(caller Caller, payoutID string, status PayoutStatus) error
	GetContributorPayouts(contributorID string) ([]*PayoutRecord, error)
}
