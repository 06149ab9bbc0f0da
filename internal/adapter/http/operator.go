package httpadapter

import (
	"encoding/json"
	"net/http"
)

type thresholdsRequest struct {
	MinPauseClicks    *int64 `json:"min_pause_clicks"`
	MinActivateClicks *int64 `json:"min_activate_clicks"`
}

// handleBudgetRecalculate applies the aggregate daily budget of a campaign
// immediately.
func (h *Handler) handleBudgetRecalculate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	res, err := h.svc.ForceBudgetRecalculation(r.Context(), id)
	if err != nil {
		h.writeError(w, "budget recalculation", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleSetThresholds stores per-campaign click thresholds. Both values are
// required; the reactivation threshold must exceed the pause threshold.
func (h *Handler) handleSetThresholds(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	var req thresholdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if req.MinPauseClicks == nil || req.MinActivateClicks == nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "min_pause_clicks and min_activate_clicks are required"})
		return
	}
	if err := h.svc.SetThresholds(r.Context(), id, *req.MinPauseClicks, *req.MinActivateClicks); err != nil {
		h.writeError(w, "set thresholds", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListAPIErrors returns a page of the platform error log. Missing page
// and limit parameters fall back to the use case defaults.
func (h *Handler) handleListAPIErrors(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid page"})
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		return
	}
	res, err := h.svc.ListAPIErrors(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, "list api errors", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleResolveAPIError(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.ResolveAPIError(r.Context(), id); err != nil {
		h.writeError(w, "resolve api error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
