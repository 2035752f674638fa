package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"execboard/internal/period"
	"execboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func (h *Handler) handleResolvePeriod(w http.ResponseWriter, r *http.Request) {
	granularity, err := parseGranularity(chi.URLParam(r, "granularity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid granularity", map[string]string{"granularity": "one of today, this-week, this-month, this-quarter"})
		return
	}
	reference, err := parseReference(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid at timestamp", map[string]string{"at": "RFC3339"})
		return
	}
	writeJSON(w, http.StatusOK, periodResponse{
		Granularity: string(granularity),
		PeriodStart: period.Resolve(granularity, reference),
	})
}

type trackProgressRequest struct {
	Period      string   `json:"period"`
	Target      *float64 `json:"target"`
	Actual      *float64 `json:"actual"`
	CompletedBy *string  `json:"completed_by"`
}

func (h *Handler) handleTrackProgress(w http.ResponseWriter, r *http.Request) {
	moveID, err := parseID(chi.URLParam(r, "moveID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid move id", map[string]string{"move_id": "invalid"})
		return
	}
	var req trackProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	granularity, err := parseGranularity(req.Period)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid granularity", map[string]string{"period": "one of today, this-week, this-month, this-quarter"})
		return
	}
	if req.Actual == nil || !validNumber(*req.Actual) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "actual required", map[string]string{"actual": "number"})
		return
	}
	if req.Target != nil && (!validNumber(*req.Target) || *req.Target < 0) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid target", map[string]string{"target": "non-negative number"})
		return
	}
	reference, err := parseReference(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid at timestamp", map[string]string{"at": "RFC3339"})
		return
	}

	record, err := h.service.TrackProgress(r.Context(), service.TrackInput{
		PowerMoveID: moveID,
		Granularity: granularity,
		Reference:   reference,
		Target:      req.Target,
		Actual:      *req.Actual,
		CompletedBy: req.CompletedBy,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "power move not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to track progress", nil)
		return
	}
	if h.metrics != nil {
		h.metrics.TrackingUpsert()
	}
	writeJSON(w, http.StatusOK, mapTrackingRecord(record))
}

func (h *Handler) handleTracking(w http.ResponseWriter, r *http.Request) {
	granularity, err := parseGranularity(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid granularity", map[string]string{"period": "one of today, this-week, this-month, this-quarter"})
		return
	}
	moveIDs, err := parseIDList(r.URL.Query().Get("move_ids"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid move_ids", map[string]string{"move_ids": "comma-separated ids required"})
		return
	}
	reference, err := parseReference(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid at timestamp", map[string]string{"at": "RFC3339"})
		return
	}

	records, err := h.service.PeriodTracking(r.Context(), granularity, reference, moveIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load tracking", nil)
		return
	}
	items := make([]trackingRecord, 0, len(records))
	for _, record := range records {
		items = append(items, mapTrackingRecord(record))
	}
	writeJSON(w, http.StatusOK, trackingResponse{
		PeriodStart: period.Resolve(granularity, reference),
		Items:       items,
	})
}
