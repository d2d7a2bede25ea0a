package models

import "time"

type AssignmentModel struct {
	ID                   string `gorm:"primaryKey"`
	ProjectID            string `gorm:"not null;uniqueIndex:idx_project_contributor_role;index:idx_assignment_project"`
	ContributorID        string `gorm:"not null;uniqueIndex:idx_project_contributor_role"`
	Role                 string `gorm:"not null;uniqueIndex:idx_project_contributor_role"`
	CommissionPercentage float64
	CreatedAt            time.Time
}

func (AssignmentModel) TableName() string {
	return "project_contributor_assignments"
}
