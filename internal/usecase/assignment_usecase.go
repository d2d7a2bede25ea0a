package usecase

import (
	"errors"
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type DefaultAssignmentUsecase struct {
	assignmentRepo domain.AssignmentRepository
}

func NewDefaultAssignmentUsecase(assignmentRepo domain.AssignmentRepository) *DefaultAssignmentUsecase {
	return &DefaultAssignmentUsecase{assignmentRepo: assignmentRepo}
}

// AddContributor registers a contributor on a project. The same contributor
// may be re-added under a different role; the same (project, contributor,
// role) triple is rejected.
func (uc *DefaultAssignmentUsecase) AddContributor(caller domain.Caller, assignment *domain.ProjectContributorAssignment) error {
	if !caller.HasRole(domain.RoleAdmin) {
		return domain.ErrPermissionDenied
	}
	if assignment.ProjectID == "" {
		return &domain.MissingFieldError{Field: "projectId"}
	}
	if assignment.ContributorID == "" {
		return &domain.MissingFieldError{Field: "contributorId"}
	}
	if assignment.Role == "" {
		return &domain.MissingFieldError{Field: "role"}
	}
	if assignment.CommissionPercentage < 0 || assignment.CommissionPercentage > 100 {
		return domain.ErrPercentOutOfRange
	}

	existing, err := uc.assignmentRepo.GetByProjectContributorRole(
		assignment.ProjectID, assignment.ContributorID, assignment.Role)
	if err != nil && !errors.Is(err, domain.ErrAssignmentNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateAssignment
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}
	assignment.ID = idGenerator()
	assignment.CreatedAt = time.Now().UTC()

	return uc.assignmentRepo.CreateAssignment(assignment)
}

func (uc *DefaultAssignmentUsecase) ListContributors(projectID string) ([]*domain.ProjectContributorAssignment, error) {
	return uc.assignmentRepo.ListByProjectID(projectID)
}
