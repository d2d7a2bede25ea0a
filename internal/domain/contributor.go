package domain

import "time"

// Contributor is a platform user eligible to receive commission.
type Contributor struct {
	ContributorID string
	Role          string
	AffiliateID   string
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// CreatorApplication is an approved creator's registration, carrying the
// affiliate link used for direct-sale attribution. The stored link may have
// extra path segments beyond the bare affiliate id, so attribution matches
// by substring, not equality.
type CreatorApplication struct {
	ID            string
	ContributorID string
	AffiliateLink string
	Status        ApplicationStatus
	ApprovedAt    time.Time
	CreatedAt     time.Time
}

type ApplicationRepository interface {
	CreateApplication(application *CreatorApplication) error
	// GetApprovedApplications returns approved applications ordered by
	// approval time ascending, so ambiguous matches resolve deterministically.
	GetApprovedApplications() ([]*CreatorApplication, error)
}
