package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/request"
	"github.com/clipwave/commission-service/internal/delivery/http/middleware"
	"github.com/clipwave/commission-service/internal/infrastructure/partner"
	"github.com/clipwave/commission-service/internal/usecase"
)

type AffiliateHandler struct {
	verifier           *partner.LinkVerifier
	applicationUsecase *usecase.DefaultApplicationUsecase
}

func NewAffiliateHandler(verifier *partner.LinkVerifier, applicationUsecase *usecase.DefaultApplicationUsecase) *AffiliateHandler {
	return &AffiliateHandler{verifier: verifier, applicationUsecase: applicationUsecase}
}

// HandleVerifyLink checks a candidate affiliate URL during creator
// onboarding: shape, partner domain, reachability.
func (h *AffiliateHandler) HandleVerifyLink(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "missing url")
		return
	}

	respondJSON(w, http.StatusOK, h.verifier.Verify(req.URL))
}

func (h *AffiliateHandler) HandleRegisterLink(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req request.RegisterAffiliateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	application, err := h.applicationUsecase.RegisterAffiliateLink(caller, req.ContributorID, req.AffiliateLink)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, application)
}
