package repository

import (
	"errors"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	db *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{db: db}
}

func (r *DefaultPayoutRepository) CreatePayout(payout *domain.PayoutRecord) error {
	return r.db.Create(mappers.ToGORMPayout(payout)).Error
}

func (r *DefaultPayoutRepository) GetPayoutByID(payoutID string) (*domain.PayoutRecord, error) {
	var payoutModel models.PayoutModel
	if err := r.db.Where("id = ?", payoutID).First(&payoutModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPayoutNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayout(&payoutModel), nil
}

func (r *DefaultPayoutRepository) UpdatePayoutStatus(payoutID string, status domain.PayoutStatus) error {
	return r.db.Model(&models.PayoutModel{}).
		Where("id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *DefaultPayoutRepository) GetPayoutsByContributorID(contributorID string) ([]*domain.PayoutRecord, error) {
	var payoutModels []models.PayoutModel
	if err := r.db.Where("contributor_id = ?", contributorID).
		Order("payout_date DESC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	payouts := make([]*domain.PayoutRecord, len(payoutModels))
	for i := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModels[i])
	}
	return payouts, nil
}
