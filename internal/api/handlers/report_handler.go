package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kezv166-web/medicare/internal/application/services"
	"github.com/kezv166-web/medicare/internal/domain/entities"
)

// ReportHandler handles community report HTTP requests
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type submitReportRequest struct {
	Status string `json:"status"`
}

// SubmitReport handles POST /api/facilities/{id}/reports
func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	facilityID := r.PathValue("id")
	if facilityID == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	var req submitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, err := entities.ParseReportKind(req.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	report, err := h.reports.Record(r.Context(), facilityID, kind)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
