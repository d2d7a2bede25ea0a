package usecase

import (
	"time"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type DefaultApplicationUsecase struct {
	applicationRepo domain.ApplicationRepository
}

func NewDefaultApplicationUsecase(applicationRepo domain.ApplicationRepository) *DefaultApplicationUsecase {
	return &DefaultApplicationUsecase{applicationRepo: applicationRepo}
}

// RegisterAffiliateLink stores an approved application's affiliate link so
// future webhook sales can attribute to the contributor.
func (uc *DefaultApplicationUsecase) RegisterAffiliateLink(caller domain.Caller, contributorID, affiliateLink string) (*domain.CreatorApplication, error) {
	if !caller.HasRole(domain.RoleAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	if contributorID == "" {
		return nil, &domain.MissingFieldError{Field: "contributorId"}
	}
	if affiliateLink == "" {
		return nil, &domain.MissingFieldError{Field: "affiliateLink"}
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	application := &domain.CreatorApplication{
		ID:            idGenerator(),
		ContributorID: contributorID,
		AffiliateLink: affiliateLink,
		Status:        domain.ApplicationApproved,
		ApprovedAt:    now,
		CreatedAt:     now,
	}
	if err := uc.applicationRepo.CreateApplication(application); err != nil {
		return nil, err
	}
	return application, nil
}
