package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

// handleSweep runs one sweep synchronously and returns its report. It is
// the entry point for an external scheduler such as cron.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	kind, err := port.ParseSweepKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	report, err := h.svc.RunSweep(r.Context(), kind)
	if err != nil {
		h.writeError(w, "sweep", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleSpendRefresh(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.ForceSpendRefresh(r.Context())
	if err != nil {
		h.writeError(w, "spend refresh", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
