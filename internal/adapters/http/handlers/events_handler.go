package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/app/events"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// EventsHandler streams board snapshots to clients over Server-Sent Events.
type EventsHandler struct {
	hub    *events.Hub
	svc    ports.ProjectService
	logger *slog.Logger
}

// NewEventsHandler creates an EventsHandler backed by the given hub.
func NewEventsHandler(hub *events.Hub, svc ports.ProjectService, logger *slog.Logger) *EventsHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EventsHandler{hub: hub, svc: svc, logger: logger}
}

// Stream handles GET /api/v1/events. The first frame is the current board
// snapshot; every subsequent frame is the full snapshot published after a
// create or move. The stream ends when the client disconnects.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("streaming unsupported by connection"))
		return
	}

	// Register before the initial snapshot so no update published in
	// between is lost.
	frames, cancel := h.hub.Register()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	initial := h.svc.ListProjects(r.Context(), ports.Filter{})
	if err := writeEvent(w, initial); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write initial snapshot",
			slog.Any("error", err),
		)
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot, open := <-frames:
			if !open {
				return
			}
			if err := writeEvent(w, snapshot); err != nil {
				h.logger.ErrorContext(r.Context(), "failed to write snapshot frame",
					slog.Any("error", err),
				)
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent encodes one snapshot as an SSE data frame.
func writeEvent(w http.ResponseWriter, projects []domain.Project) error {
	data, err := json.Marshal(dto.ToProjectListResponse(projects))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
	return err
}
