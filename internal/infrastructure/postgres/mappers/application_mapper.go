package mappers

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainApplication(model *models.ApplicationModel) *domain.CreatorApplication {
	return &domain.CreatorApplication{
		ID:            model.ID,
		ContributorID: model.ContributorID,
		AffiliateLink: model.AffiliateLink,
		Status:        domain.ApplicationStatus(model.Status),
		ApprovedAt:    model.ApprovedAt,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMApplication(application *domain.CreatorApplication) *models.ApplicationModel {
	return &models.ApplicationModel{
		ID:            application.ID,
		ContributorID: application.ContributorID,
		AffiliateLink: application.AffiliateLink,
		Status:        string(application.Status),
		ApprovedAt:    application.ApprovedAt,
		CreatedAt:     application.CreatedAt,
	}
}
