package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clipwave/commission-service/internal/delivery/http/dto/request"
	"github.com/clipwave/commission-service/internal/delivery/http/dto/response"
	"github.com/clipwave/commission-service/internal/delivery/http/middleware"
	"github.com/clipwave/commission-service/internal/usecase"
	importdto "github.com/clipwave/commission-service/internal/usecase/dto/imports"
)

type ImportHandler struct {
	importUsecase usecase.ImportUsecase
}

func NewImportHandler(importUsecase usecase.ImportUsecase) *ImportHandler {
	return &ImportHandler{importUsecase: importUsecase}
}

func (h *ImportHandler) HandleImportSales(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req request.ImportSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	report, err := h.importUsecase.ImportProjectSales(caller, &importdto.ImportInput{
		CSVData:   req.CSVData,
		ProjectID: req.VideoID,
	})
	if err != nil {
		slog.Error("csv import failed", "project_id", req.VideoID, "error", err)
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.ImportSalesResponse{
		Success:    true,
		Imported:   report.Imported,
		Duplicates: report.Duplicates,
		Total:      report.Total,
		Failures:   report.Failures,
	})
}
