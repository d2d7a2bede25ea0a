package usecase

import (
	"log/slog"
	"strings"

	"github.com/clipwave/commission-service/internal/domain"
)

type AttributionResult struct {
	Matched       bool
	Ambiguous     bool
	ContributorID string
}

// DefaultAttributionResolver maps an external affiliate id to the contributor
// whose approved application's affiliate link contains it. A miss is a normal
// business outcome, not an error; storage failures propagate.
type DefaultAttributionResolver struct {
	applicationRepo domain.ApplicationRepository
}

func NewDefaultAttributionResolver(applicationRepo domain.ApplicationRepository) *DefaultAttributionResolver {
	return &DefaultAttributionResolver{applicationRepo: applicationRepo}
}

func (r *DefaultAttributionResolver) Resolve(affiliateID string) (*AttributionResult, error) {
	if affiliateID == "" {
		return &AttributionResult{}, nil
	}

	applications, err := r.applicationRepo.GetApprovedApplications()
	if err != nil {
		return nil, err
	}

	// Stored links may carry extra path segments beyond the bare id, so this
	// is a case-insensitive substring match, not equality.
	needle := strings.ToLower(affiliateID)
	var matches []*domain.CreatorApplication
	for _, application := range applications {
		if strings.Contains(strings.ToLower(application.AffiliateLink), needle) {
			matches = append(matches, application)
		}
	}

	switch len(matches) {
	case 0:
		slog.Info("no contributor matched affiliate id", "affiliate_id", affiliateID)
		return &AttributionResult{}, nil
	case 1:
		return &AttributionResult{Matched: true, ContributorID: matches[0].ContributorID}, nil
	default:
		// Applications arrive ordered by approval time, so the earliest
		// approved contributor wins.
		slog.Warn("ambiguous affiliate attribution, using earliest approved match",
			"affiliate_id", affiliateID,
			"matches", len(matches),
			"contributor_id", matches[0].ContributorID,
		)
		return &AttributionResult{Matched: true, Ambiguous: true, ContributorID: matches[0].ContributorID}, nil
	}
}
