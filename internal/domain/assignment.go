package domain

import "time"

// ProjectContributorAssignment links a contributor to a project with a fixed
// share of that project's commission pool. Percentages across a project are
// not required to sum to 100; unassigned commission stays unallocated.
type ProjectContributorAssignment struct {
	ID                   string
	ProjectID            string
	ContributorID        string
	CommissionPercentage float64
	Role                 string
	CreatedAt            time.Time
}

type AssignmentRepository interface {
	CreateAssignment(assignment *ProjectContributorAssignment) error
	ListByProjectID(projectID string) ([]*ProjectContributorAssignment, error)
	GetByProjectContributorRole(projectID, contributorID, role string) (*ProjectContributorAssignment, error)
}

type AssignmentUsecase interface {
	AddContributor(caller Caller, assignment *ProjectContributorAssignment) error
	ListContributors(projectID string) ([]*ProjectContributorAssignment, error)
}
