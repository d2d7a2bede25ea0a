package repository

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultApplicationRepository struct {
	db *gorm.DB
}

func NewDefaultApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{db: db}
}

func (r *DefaultApplicationRepository) CreateApplication(application *domain.CreatorApplication) error {
	return r.db.Create(mappers.ToGORMApplication(application)).Error
}

// GetApprovedApplications orders by approval time so ambiguous affiliate
// matches resolve to the earliest approved contributor.
func (r *DefaultApplicationRepository) GetApprovedApplications() ([]*domain.CreatorApplication, error) {
	var applicationModels []models.ApplicationModel
	if err := r.db.Where("status = ?", string(domain.ApplicationApproved)).
		Order("approved_at ASC").
		Find(&applicationModels).Error; err != nil {
		return nil, err
	}
	applications := make([]*domain.CreatorApplication, len(applicationModels))
	for i := range applicationModels {
		applications[i] = mappers.ToDomainApplication(&applicationModels[i])
	}
	return applications, nil
}
