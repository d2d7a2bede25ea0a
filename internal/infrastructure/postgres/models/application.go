package models

import "time"

type ApplicationModel struct {
	ID            string `gorm:"primaryKey"`
	ContributorID string `gorm:"not null;index:idx_application_contributor"`
	AffiliateLink string
	Status        string `gorm:"index:idx_application_status"`
	ApprovedAt    time.Time
	CreatedAt     time.Time
}

func (ApplicationModel) TableName() string {
	return "creator_applications"
}
