package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bulk-trafficker/internal/core/domain"
)

type batchResponse struct {
	Batches []domain.BatchSummary `json:"batches"`
	Error   string                `json:"error,omitempty"`
}

// handleBatch runs one entity sheet, or every sheet for {sheet} = "all".
// A batch that stops on a bad row still reports what it submitted.
func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	sheet := chi.URLParam(r, "sheet")

	var (
		resp batchResponse
		err  error
	)
	if strings.EqualFold(sheet, "all") {
		resp.Batches, err = h.svc.RunAll(r.Context())
	} else {
		var summary domain.BatchSummary
		summary, err = h.svc.RunSheet(r.Context(), sheet)
		resp.Batches = []domain.BatchSummary{summary}
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound {
			h.writeJSON(w, status, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("batch error", slog.String("sheet", sheet), slog.Any("error", err))
		resp.Error = err.Error()
		h.writeJSON(w, status, resp)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
