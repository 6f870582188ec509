package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bulk-trafficker/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that lets a scheduler or a script trigger the same operations as the
// CLI. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.TraffickingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.TraffickingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/batches/{sheet}", h.handleBatch)
		r.Post("/lists/{kind}", h.handleList)
		r.Get("/runs", h.handleRuns)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
