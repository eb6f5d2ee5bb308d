// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The timeout middleware
// (may be nil) is applied to every route except the event stream: its
// buffering writer would hold SSE frames until the handler returns, and the
// stream deliberately lives until the client disconnects.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	boardHandler *handlers.BoardHandler,
	eventsHandler *handlers.EventsHandler,
	healthHandler *handlers.HealthHandler,
	timeout func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Group(func(r chi.Router) {
		if timeout != nil {
			r.Use(timeout)
		}
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if timeout != nil {
				r.Use(timeout)
			}

			// Project listing, creation, and reassignment.
			r.Get("/projects", projectHandler.ListProjects)
			r.Post("/projects", projectHandler.CreateProject)
			r.Post("/projects/bulk-move", projectHandler.BulkMoveProjects)
			r.Get("/projects/{id}", projectHandler.GetProject)
			r.Patch("/projects/{id}/status", projectHandler.MoveProject)

			// Drag-and-drop protocol.
			r.Get("/projects/{id}/drag", boardHandler.DragPayload)
			r.Post("/board/{column}/dragover", boardHandler.DragOver)
			r.Post("/board/{column}/dragleave", boardHandler.DragLeave)
			r.Post("/board/{column}/drop", boardHandler.Drop)
		})

		// Live board updates. No request timeout: the stream ends when the
		// client disconnects.
		r.Get("/events", eventsHandler.Stream)
	})

	return r
}
