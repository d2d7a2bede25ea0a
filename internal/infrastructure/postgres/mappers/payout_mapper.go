package mappers

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.PayoutRecord {
	return &domain.PayoutRecord{
		ID:            model.ID,
		ContributorID: model.ContributorID,
		Amount:        model.Amount,
		PayoutDate:    model.PayoutDate,
		Status:        domain.PayoutStatus(model.Status),
		Notes:         model.Notes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMPayout(payout *domain.PayoutRecord) *models.PayoutModel {
	return &models.PayoutModel{
		ID:            payout.ID,
		ContributorID: payout.ContributorID,
		Amount:        payout.Amount,
		PayoutDate:    payout.PayoutDate,
		Status:        string(payout.Status),
		Notes:         payout.Notes,
		CreatedAt:     payout.CreatedAt,
		UpdatedAt:     payout.UpdatedAt,
	}
}
