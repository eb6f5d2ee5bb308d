package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/app/dnd"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// DragEffectHeader carries the declared drag effect on drag payload responses.
const DragEffectHeader = "X-Drag-Effect"

// maxDragPayloadBytes bounds the drop request body. The payload is a single
// project ID, so anything past a small limit is garbage.
const maxDragPayloadBytes = 1 << 10

// BoardHandler exposes the drag-and-drop protocol over HTTP. Each status
// column owns one long-lived drop target; drag sources are created per
// request since a card's payload is just its ID.
type BoardHandler struct {
	svc     ports.ProjectService
	targets map[domain.Status]*dnd.ColumnTarget
	logger  *slog.Logger
}

// NewBoardHandler creates a BoardHandler with one drop target per board column.
func NewBoardHandler(svc ports.ProjectService, logger *slog.Logger) *BoardHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	targets := make(map[domain.Status]*dnd.ColumnTarget)
	for _, status := range []domain.Status{domain.StatusActive, domain.StatusFinished} {
		targets[status] = dnd.NewColumnTarget(status, svc, logger)
	}

	return &BoardHandler{svc: svc, targets: targets, logger: logger}
}

// DragPayload handles GET /api/v1/projects/{id}/drag. It plays the draggable
// side of the protocol: the response body is the transfer payload (the
// project ID) and the drag effect is declared in a header. Dragging a project
// that does not exist is a 404.
func (h *BoardHandler) DragPayload(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.svc.GetProject(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	source := dnd.NewCardSource(id, h.logger)
	payload := source.DragStart(r.Context())
	defer source.DragEnd(r.Context())

	w.Header().Set("Content-Type", payload.MediaType)
	w.Header().Set(DragEffectHeader, payload.Effect)
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, payload.Data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write drag payload",
			slog.Any("error", err),
		)
	}
}

// DragOver handles POST /api/v1/board/{column}/dragover. The request's
// Content-Type plays the transfer's declared media type; the response reports
// whether this column accepts it and the resulting hover state.
func (h *BoardHandler) DragOver(w http.ResponseWriter, r *http.Request) {
	target, err := h.target(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	accepted := target.DragOver(r.Context(), requestMediaType(r))

	writeJSON(w, http.StatusOK, dto.ColumnStateResponse{
		Status:   target.Status().String(),
		Accepted: accepted,
		Hovered:  target.Hovered(),
	})
}

// DragLeave handles POST /api/v1/board/{column}/dragleave.
func (h *BoardHandler) DragLeave(w http.ResponseWriter, r *http.Request) {
	target, err := h.target(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	target.DragLeave(r.Context())

	writeJSON(w, http.StatusOK, dto.ColumnStateResponse{
		Status:  target.Status().String(),
		Hovered: target.Hovered(),
	})
}

// Drop handles POST /api/v1/board/{column}/drop. The body is the transfer
// payload; a Content-Type other than the project-ID media type is rejected
// with 415 and nothing moves.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	target, err := h.target(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDragPayloadBytes))
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "unreadable payload"},
		})
		return
	}

	payload := dnd.Payload{
		MediaType: requestMediaType(r),
		Data:      strings.TrimSpace(string(body)),
		Effect:    dnd.EffectMove,
	}

	if err := target.Drop(r.Context(), payload); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DropResponse{
		ProjectID: payload.Data,
		Status:    target.Status().String(),
	})
}

// target resolves the {column} path parameter to its drop target.
func (h *BoardHandler) target(r *http.Request) (*dnd.ColumnTarget, error) {
	column, err := columnParam(r, "column")
	if err != nil {
		return nil, err
	}
	return h.targets[column], nil
}
