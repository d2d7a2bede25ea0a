package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, response.ErrorResponse{Error: message})
}

// respondUsecaseError maps domain errors onto HTTP statuses. Anything
// unrecognized is a transient storage failure: 500, safe to retry.
func respondUsecaseError(w http.ResponseWriter, err error) {
	var missing *domain.MissingFieldError
	var malformed *domain.MalformedRowError
	switch {
	case errors.As(err, &missing), errors.As(err, &malformed):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrPercentOutOfRange),
		errors.Is(err, domain.ErrInvalidPayoutStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateAssignment):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPayoutImmutable):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPayoutNotFound),
		errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
