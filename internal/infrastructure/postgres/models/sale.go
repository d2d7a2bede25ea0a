package models

import "time"

type SaleModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	ExternalSaleID string `gorm:"uniqueIndex:idx_external_sale_id;not null"`
	ProductName    string
	SaleAmount     float64
	AffiliateID    string `gorm:"index:idx_affiliate_id"`
	BuyerEmail     string
	SaleDate       time.Time
	ProjectID      string `gorm:"index:idx_sale_project"`
	CommissionPool float64
	Source         string
	CreatedAt      time.Time
}

func (SaleModel) TableName() string {
	return "sales"
}
