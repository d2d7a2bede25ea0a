package domain

const (
	RoleAdmin       = "admin"
	RoleContributor = "contributor"
)

// Caller identifies the authenticated principal behind an operation. Identity
// itself comes from the platform boundary; usecases only check roles.
type Caller struct {
	ID    string
	Roles []string
}

func (c Caller) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
