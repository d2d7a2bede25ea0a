package mappers

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainSale(model *models.SaleModel) *domain.SaleRecord {
	return &domain.SaleRecord{
		ID:             model.ID,
		ExternalSaleID: model.ExternalSaleID,
		ProductName:    model.ProductName,
		SaleAmount:     model.SaleAmount,
		AffiliateID:    model.AffiliateID,
		BuyerEmail:     model.BuyerEmail,
		SaleDate:       model.SaleDate,
		ProjectID:      model.ProjectID,
		CommissionPool: model.CommissionPool,
		Source:         domain.SaleSource(model.Source),
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMSale(sale *domain.SaleRecord) *models.SaleModel {
	return &models.SaleModel{
		ID:             sale.ID,
		ExternalSaleID: sale.ExternalSaleID,
		ProductName:    sale.ProductName,
		SaleAmount:     sale.SaleAmount,
		AffiliateID:    sale.AffiliateID,
		BuyerEmail:     sale.BuyerEmail,
		SaleDate:       sale.SaleDate,
		ProjectID:      sale.ProjectID,
		CommissionPool: sale.CommissionPool,
		Source:         string(sale.Source),
		CreatedAt:      sale.CreatedAt,
	}
}
