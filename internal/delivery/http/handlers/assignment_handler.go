package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/request"
	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/delivery/http/middleware"
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler struct {
	assignmentUsecase domain.AssignmentUsecase
}

func NewAssignmentHandler(assignmentUsecase domain.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{assignmentUsecase: assignmentUsecase}
}

func (h *AssignmentHandler) HandleAddContributor(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req request.AddContributorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	assignment := &domain.ProjectContributorAssignment{
		ProjectID:            chi.URLParam(r, "projectID"),
		ContributorID:        req.ContributorID,
		CommissionPercentage: req.CommissionPercentage,
		Role:                 req.Role,
	}
	if err := h.assignmentUsecase.AddContributor(caller, assignment); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) HandleListContributors(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentUsecase.ListContributors(chi.URLParam(r, "projectID"))
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	out := make([]response.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		out[i] = toAssignmentResponse(assignment)
	}
	respondJSON(w, http.StatusOK, out)
}

func toAssignmentResponse(assignment *domain.ProjectContributorAssignment) response.AssignmentResponse {
	return response.AssignmentResponse{
		ID:                   assignment.ID,
		ProjectID:            assignment.ProjectID,
		ContributorID:        assignment.ContributorID,
		CommissionPercentage: assignment.CommissionPercentage,
		Role:                 assignment.Role,
	}
}
