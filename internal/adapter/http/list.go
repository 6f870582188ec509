package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type listResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// handleList refreshes one listing on the Lists sheet.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	n, err := h.svc.List(r.Context(), kind)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("list error", slog.String("kind", kind), slog.Any("error", err))
		}
		h.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, listResponse{Kind: kind, Count: n})
}
