package repository

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultSplitRepository is read-only: splits are written exclusively through
// the sale repository's transactional ledger write.
type DefaultSplitRepository struct {
	db *gorm.DB
}

func NewDefaultSplitRepository(db *gorm.DB) *DefaultSplitRepository {
	return &DefaultSplitRepository{db: db}
}

func (r *DefaultSplitRepository) GetSplitsByContributorID(contributorID string) ([]*domain.CommissionSplit, error) {
	var splitModels []models.CommissionSplitModel
	if err := r.db.Where("contributor_id = ?", contributorID).
		Order("calculated_at ASC").
		Find(&splitModels).Error; err != nil {
		return nil, err
	}
	return toDomainSplits(splitModels), nil
}

func (r *DefaultSplitRepository) GetSplitsBySaleID(saleID string) ([]*domain.CommissionSplit, error) {
	var splitModels []models.CommissionSplitModel
	if err := r.db.Where("sale_id = ?", saleID).Find(&splitModels).Error; err != nil {
		return nil, err
	}
	return toDomainSplits(splitModels), nil
}

func toDomainSplits(splitModels []models.CommissionSplitModel) []*domain.CommissionSplit {
	splits := make([]*domain.CommissionSplit, len(splitModels))
	for i := range splitModels {
		splits[i] = mappers.ToDomainSplit(&splitModels[i])
	}
	return splits
}
