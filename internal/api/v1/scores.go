package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"execboard/internal/domain"
	"execboard/internal/period"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load departments", nil)
		return
	}
	items := make([]departmentInfo, 0, len(departments))
	for _, dept := range departments {
		items = append(items, departmentInfo{ID: dept.ID, Name: dept.Name})
	}
	writeJSON(w, http.StatusOK, departmentsResponse{Items: items})
}

func (h *Handler) handleDepartmentScore(w http.ResponseWriter, r *http.Request) {
	deptID, err := parseID(chi.URLParam(r, "deptID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid department id", map[string]string{"dept_id": "invalid"})
		return
	}
	granularity, reference, ok := h.parsePeriodQuery(w, r)
	if !ok {
		return
	}
	score, err := h.service.DepartmentScore(r.Context(), deptID, granularity, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "department not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to compute department score", nil)
		return
	}
	if h.metrics != nil {
		h.metrics.RollupRead("department")
	}
	writeJSON(w, http.StatusOK, mapDepartmentScore(period.Resolve(granularity, reference), score))
}

func (h *Handler) handleTargetProgress(w http.ResponseWriter, r *http.Request) {
	targetID, err := parseID(chi.URLParam(r, "targetID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid target id", map[string]string{"target_id": "invalid"})
		return
	}
	granularity, reference, ok := h.parsePeriodQuery(w, r)
	if !ok {
		return
	}
	progress, err := h.service.TargetProgress(r.Context(), targetID, granularity, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "victory target not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to compute target progress", nil)
		return
	}
	if h.metrics != nil {
		h.metrics.RollupRead("target")
	}
	writeJSON(w, http.StatusOK, mapTargetProgress(progress))
}

type updateAchievedRequest struct {
	Achieved *float64 `json:"achieved"`
}

func (h *Handler) handleUpdateAchieved(w http.ResponseWriter, r *http.Request) {
	targetID, err := parseID(chi.URLParam(r, "targetID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid target id", map[string]string{"target_id": "invalid"})
		return
	}
	var req updateAchievedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if req.Achieved == nil || !validNumber(*req.Achieved) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "achieved required", map[string]string{"achieved": "number"})
		return
	}
	target, err := h.service.UpdateTargetAchieved(r.Context(), targetID, *req.Achieved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "victory target not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to update achieved", nil)
		return
	}
	writeJSON(w, http.StatusOK, victoryTargetInfo{
		ID:           target.ID,
		DepartmentID: target.DepartmentID,
		Title:        target.Title,
		TargetValue:  target.TargetValue,
		Achieved:     target.Achieved,
		Unit:         target.Unit,
	})
}

func (h *Handler) handleCompanyScore(w http.ResponseWriter, r *http.Request) {
	granularity, reference, ok := h.parsePeriodQuery(w, r)
	if !ok {
		return
	}
	score, err := h.service.CompanyScore(r.Context(), granularity, reference)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to compute company score", nil)
		return
	}
	if h.metrics != nil {
		h.metrics.RollupRead("company")
	}
	writeJSON(w, http.StatusOK, companyScoreResponse{
		PeriodStart:       period.Resolve(granularity, reference),
		AverageScore:      score.AverageScore,
		TotalGreenTargets: score.TotalGreenTargets,
		TotalTargets:      score.TotalTargets,
		Status:            string(score.Status),
	})
}

// parsePeriodQuery reads the period token and optional reference instant
// shared by the rollup endpoints. It writes the error response itself and
// reports success through ok.
func (h *Handler) parsePeriodQuery(w http.ResponseWriter, r *http.Request) (domain.Granularity, time.Time, bool) {
	granularity, err := parseGranularity(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid granularity", map[string]string{"period": "one of today, this-week, this-month, this-quarter"})
		return "", time.Time{}, false
	}
	reference, err := parseReference(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid at timestamp", map[string]string{"at": "RFC3339"})
		return "", time.Time{}, false
	}
	return granularity, reference, true
}
