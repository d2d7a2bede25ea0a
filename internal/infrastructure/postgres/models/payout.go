package models

import "time"

type PayoutModel struct {
	ID            string `gorm:"primaryKey"`
	ContributorID string `gorm:"not null;index:idx_payout_contributor"`
	Amount        float64
	PayoutDate    time.Time
	Status        string `gorm:"index:idx_payout_status"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PayoutModel) TableName() string {
	return "payout_records"
}
