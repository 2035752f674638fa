package v1

import (
	"net/http"
	"time"

	"execboard/internal/metrics"
	"execboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	service *service.Service
	metrics *metrics.Metrics
}

func NewHandler(service *service.Service, metrics *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: metrics}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.observe)

	r.Get("/periods/{granularity}", h.handleResolvePeriod)
	r.Get("/tracking", h.handleTracking)
	r.Post("/moves/{moveID}/tracking", h.handleTrackProgress)

	r.Get("/departments", h.handleDepartments)
	r.Get("/departments/{deptID}/score", h.handleDepartmentScore)
	r.Get("/targets/{targetID}/progress", h.handleTargetProgress)
	r.Put("/targets/{targetID}/achieved", h.handleUpdateAchieved)
	r.Get("/company/score", h.handleCompanyScore)
	r.Get("/correlations", h.handleCorrelations)

	return r
}

func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		h.metrics.ObserveRequest(route, ww.Status(), time.Since(start))
	})
}
