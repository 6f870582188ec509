package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"bulk-trafficker/internal/core/domain"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 500
)

// handleRuns returns recent journal runs, newest first. The optional
// `limit` query parameter defaults to 20 and is capped at 500.
func (h *Handler) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.svc.Runs(r.Context(), limit)
	if err != nil {
		h.logger.Error("runs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	h.writeJSON(w, http.StatusOK, runs)
}
