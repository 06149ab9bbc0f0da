package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the sweep entry points and operator actions of the controller.
type Handler struct {
	svc    port.ControlUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When gatherer is
// not nil its metrics are served on /metrics.
func NewHandler(svc port.ControlUseCase, gatherer prometheus.Gatherer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger.With("module", "http")}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sweeps/{kind}", h.handleSweep)
		r.Post("/spend/refresh", h.handleSpendRefresh)
		r.Post("/campaigns/{id}/budget/recalculate", h.handleBudgetRecalculate)
		r.Put("/campaigns/{id}/thresholds", h.handleSetThresholds)
		r.Get("/api-errors", h.handleListAPIErrors)
		r.Post("/api-errors/{id}/resolve", h.handleResolveAPIError)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
