package v1

import (
	"net/http"

	"execboard/internal/period"
)

func (h *Handler) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	granularity, reference, ok := h.parsePeriodQuery(w, r)
	if !ok {
		return
	}
	results, attention, err := h.service.Correlations(r.Context(), granularity, reference)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to compute correlations", nil)
		return
	}
	if h.metrics != nil {
		h.metrics.RollupRead("correlation")
	}
	writeJSON(w, http.StatusOK, correlationsResponse{
		PeriodStart:      period.Resolve(granularity, reference),
		Items:            mapCorrelations(results),
		SpecialAttention: mapCorrelations(attention),
	})
}
