package handlers

import (
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type SummaryHandler struct {
	summaryUsecase domain.SummaryUsecase
}

func NewSummaryHandler(summaryUsecase domain.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{summaryUsecase: summaryUsecase}
}

func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	contributorID := chi.URLParam(r, "contributorID")
	if contributorID == "" {
		respondError(w, http.StatusBadRequest, "missing contributor id")
		return
	}

	summary, err := h.summaryUsecase.ComputeContributorSummary(contributorID)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.ContributorSummaryResponse{
		ContributorID:   summary.ContributorID,
		TotalCommission: summary.TotalCommission,
		TotalSales:      summary.TotalSales,
		PendingPayout:   summary.PendingPayout,
		ProjectsCount:   summary.ProjectsCount,
	})
}
