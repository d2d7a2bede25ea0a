package repository

import (
	"errors"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAssignmentRepository struct {
	db *gorm.DB
}

func NewDefaultAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{db: db}
}

func (r *DefaultAssignmentRepository) CreateAssignment(assignment *domain.ProjectContributorAssignment) error {
	if err := r.db.Create(mappers.ToGORMAssignment(assignment)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

func (r *DefaultAssignmentRepository) ListByProjectID(projectID string) ([]*domain.ProjectContributorAssignment, error) {
	var assignmentModels []models.AssignmentModel
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	assignments := make([]*domain.ProjectContributorAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = mappers.ToDomainAssignment(&assignmentModels[i])
	}
	return assignments, nil
}

func (r *DefaultAssignmentRepository) GetByProjectContributorRole(projectID, contributorID, role string) (*domain.ProjectContributorAssignment, error) {
	var assignmentModel models.AssignmentModel
	err := r.db.Where("project_id = ? AND contributor_id = ? AND role = ?", projectID, contributorID, role).
		First(&assignmentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAssignment(&assignmentModel), nil
}
