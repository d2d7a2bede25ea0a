package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/request"
	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/delivery/http/middleware"
	"github.com/clipwave/commission-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler struct {
	payoutUsecase domain.PayoutUsecase
}

func NewPayoutHandler(payoutUsecase domain.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUsecase: payoutUsecase}
}

func (h *PayoutHandler) HandleCreatePayout(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req request.CreatePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	payout := &domain.PayoutRecord{
		ContributorID: chi.URLParam(r, "contributorID"),
		Amount:        req.Amount,
		Notes:         req.Notes,
	}
	if req.PayoutDate != "" {
		payoutDate, err := time.Parse("2006-01-02", req.PayoutDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "payoutDate must be YYYY-MM-DD")
			return
		}
		payout.PayoutDate = payoutDate
	}

	created, err := h.payoutUsecase.CreatePayout(caller, payout)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toPayoutResponse(created))
}

func (h *PayoutHandler) HandleUpdatePayoutStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req request.UpdatePayoutStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	payoutID := chi.URLParam(r, "payoutID")
	if err := h.payoutUsecase.UpdatePayoutStatus(caller, payoutID, domain.PayoutStatus(req.Status)); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: "payout status updated"})
}

func (h *PayoutHandler) HandleListPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutUsecase.GetContributorPayouts(chi.URLParam(r, "contributorID"))
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	out := make([]response.PayoutResponse, len(payouts))
	for i, payout := range payouts {
		out[i] = toPayoutResponse(payout)
	}
	respondJSON(w, http.StatusOK, out)
}

func toPayoutResponse(payout *domain.PayoutRecord) response.PayoutResponse {
	return response.PayoutResponse{
		ID:            payout.ID,
		ContributorID: payout.ContributorID,
		Amount:        payout.Amount,
		PayoutDate:    payout.PayoutDate.Format("2006-01-02"),
		Status:        string(payout.Status),
		Notes:         payout.Notes,
	}
}
