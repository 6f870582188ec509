package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bulk-trafficker/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// statusFor maps use case errors onto HTTP status codes. Problems with the
// workbook content are the operator's to fix and come back as 422.
func statusFor(err error) int {
	var rowErr *domain.RowError
	switch {
	case errors.Is(err, domain.ErrUnknownSheet), errors.Is(err, domain.ErrUnknownListing):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingSetting), errors.Is(err, domain.ErrInvalidCell), errors.As(err, &rowErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
