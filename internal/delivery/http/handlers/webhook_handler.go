package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/usecase"
	saledto "github.com/clipwave/commission-service/internal/usecase/dto/sale"
)

type WebhookHandler struct {
	saleUsecase usecase.SaleUsecase
	secret      string
}

func NewWebhookHandler(saleUsecase usecase.SaleUsecase, secret string) *WebhookHandler {
	return &WebhookHandler{saleUsecase: saleUsecase, secret: secret}
}

// HandleSaleWebhook ingests one partner sale notification. Retried
// deliveries are acknowledged with 200 so the partner stops resending.
func (h *WebhookHandler) HandleSaleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if h.secret != "" && !h.verifySignature(body, r.Header.Get("X-Signature")) {
		respondError(w, http.StatusUnauthorized, "invalid webhook signature")
		return
	}

	var payload saledto.WebhookSalePayload
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := h.saleUsecase.IngestWebhookSale(&payload)
	if err != nil {
		slog.Error("webhook ingestion failed", "sale_id", payload.SaleID, "error", err)
		respondUsecaseError(w, err)
		return
	}

	switch {
	case result.Skipped:
		respondJSON(w, http.StatusOK, response.MessageResponse{Message: "event type ignored"})
	case result.AlreadyProcessed:
		respondJSON(w, http.StatusOK, response.WebhookResponse{
			Success: true,
			SaleID:  result.SaleID,
			Message: "sale already processed",
		})
	case !result.Attributed:
		respondJSON(w, http.StatusOK, response.WebhookResponse{
			Success: true,
			SaleID:  result.SaleID,
			Message: "sale recorded, no contributor matched",
		})
	default:
		respondJSON(w, http.StatusOK, response.WebhookResponse{
			Success:      true,
			SaleID:       result.SaleID,
			CommissionID: result.SplitID,
			Message:      "sale recorded and commission attributed",
		})
	}
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
