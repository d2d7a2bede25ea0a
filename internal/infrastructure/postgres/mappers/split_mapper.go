package mappers

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainSplit(model *models.CommissionSplitModel) *domain.CommissionSplit {
	return &domain.CommissionSplit{
		ID:                   model.ID,
		SaleID:               model.SaleID,
		ContributorID:        model.ContributorID,
		CommissionAmount:     model.CommissionAmount,
		CommissionPercentage: model.CommissionPercentage,
		CalculatedAt:         model.CalculatedAt,
	}
}

func ToGORMSplit(split *domain.CommissionSplit) *models.CommissionSplitModel {
	return &models.CommissionSplitModel{
		ID:                   split.ID,
		SaleID:               split.SaleID,
		ContributorID:        split.ContributorID,
		CommissionAmount:     split.CommissionAmount,
		CommissionPercentage: split.CommissionPercentage,
		CalculatedAt:         split.CalculatedAt,
	}
}
