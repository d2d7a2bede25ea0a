package models

import "time"

type CommissionSplitModel struct {
	ID                   string    `gorm:"primaryKey"`
	SaleID               string    `gorm:"type:uuid;not null;index:idx_split_sale"`
	Sale                 SaleModel `gorm:"foreignKey:SaleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ContributorID        string    `gorm:"not null;index:idx_split_contributor"`
	CommissionAmount     float64   `gorm:"not null"`
	CommissionPercentage float64   `gorm:"not null"`
	CalculatedAt         time.Time `gorm:"not null"`
}

func (CommissionSplitModel) TableName() string {
	return "commission_splits"
}
