package mappers

import (
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainAssignment(model *models.AssignmentModel) *domain.ProjectContributorAssignment {
	return &domain.ProjectContributorAssignment{
		ID:                   model.ID,
		ProjectID:            model.ProjectID,
		ContributorID:        model.ContributorID,
		CommissionPercentage: model.CommissionPercentage,
		Role:                 model.Role,
		CreatedAt:            model.CreatedAt,
	}
}

func ToGORMAssignment(assignment *domain.ProjectContributorAssignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:                   assignment.ID,
		ProjectID:            assignment.ProjectID,
		ContributorID:        assignment.ContributorID,
		CommissionPercentage: assignment.CommissionPercentage,
		Role:                 assignment.Role,
		CreatedAt:            assignment.CreatedAt,
	}
}
