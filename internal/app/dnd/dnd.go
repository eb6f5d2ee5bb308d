// Package dnd implements the drag-and-drop reassignment protocol as two small
// capability contracts. A Draggable source attaches a project ID as the
// transferred payload; a DropTarget accepts the payload and translates the
// gesture into exactly one store move. Neither side owns business data: the
// store stays the single source of truth, and its "no-op if unchanged" and
// "ignore unknown id" policies are the only move semantics.
package dnd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

const (
	// MediaTypeProjectID is the only transfer type targets accept.
	// The payload data is the dragged project's ID, nothing more.
	MediaTypeProjectID = "text/plain"

	// EffectMove is the declared drag effect: cards move between columns,
	// they are never copied.
	EffectMove = "move"
)

// Payload is the data that crosses the source-to-target boundary.
type Payload struct {
	MediaType string
	Data      string
	Effect    string
}

// Draggable is implemented by elements that can start a drag gesture.
type Draggable interface {
	// DragStart begins the gesture and returns the transfer payload.
	DragStart(ctx context.Context) Payload

	// DragEnd is called when the gesture ends, whether or not a drop
	// occurred. Implementations only log; the source returns to idle
	// unconditionally.
	DragEnd(ctx context.Context)
}

// DropTarget is implemented by containers that can receive a dragged card,
// one per status column.
type DropTarget interface {
	// DragOver inspects the transfer's declared media type. A match marks
	// the target as hovered and returns true (the caller suppresses the
	// platform's default rejection); anything else leaves the target
	// untouched and returns false.
	DragOver(ctx context.Context, mediaType string) bool

	// Drop extracts the project ID from the payload and moves the project
	// to this target's column. A payload with the wrong media type is
	// rejected with domain.ErrPayloadType and nothing moves.
	Drop(ctx context.Context, p Payload) error

	// DragLeave clears the hovered mark unconditionally.
	DragLeave(ctx context.Context)
}

// Mover is the single store-facing dependency of a DropTarget.
// Satisfied by the application layer's ProjectService.
type Mover interface {
	MoveProject(ctx context.Context, id string, status domain.Status)
}

// Compile-time checks for the concrete protocol participants.
var (
	_ Draggable  = (*CardSource)(nil)
	_ DropTarget = (*ColumnTarget)(nil)
)

// CardSource is the draggable side of a project card.
type CardSource struct {
	projectID string
	logger    *slog.Logger
}

// NewCardSource creates a drag source for the given project.
func NewCardSource(projectID string, logger *slog.Logger) *CardSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CardSource{projectID: projectID, logger: logger}
}

// DragStart attaches the project ID as the payload and declares the move
// effect. No other project fields ever cross the boundary.
func (c *CardSource) DragStart(ctx context.Context) Payload {
	c.logger.DebugContext(ctx, "drag started", slog.String("project_id", c.projectID))
	return Payload{
		MediaType: MediaTypeProjectID,
		Data:      c.projectID,
		Effect:    EffectMove,
	}
}

// DragEnd logs the end of the gesture. Nothing else is required.
func (c *CardSource) DragEnd(ctx context.Context) {
	c.logger.DebugContext(ctx, "drag ended", slog.String("project_id", c.projectID))
}

// ColumnTarget is the drop side of one status column. Its hovered flag is the
// NotHovered/Hovered state machine from the protocol; it holds no project
// data of its own.
type ColumnTarget struct {
	status domain.Status
	mover  Mover
	logger *slog.Logger

	mu      sync.Mutex
	hovered bool
}

// NewColumnTarget creates a drop target bound to one status column.
func NewColumnTarget(status domain.Status, mover Mover, logger *slog.Logger) *ColumnTarget {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ColumnTarget{status: status, mover: mover, logger: logger}
}

// Status returns the column this target reassigns dropped cards to.
func (t *ColumnTarget) Status() domain.Status {
	return t.status
}

// Hovered reports whether an accepted drag is currently over this target.
func (t *ColumnTarget) Hovered() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hovered
}

// DragOver accepts only the project-ID media type. On a match the target
// marks itself hovered; otherwise it stays non-accepting.
func (t *ColumnTarget) DragOver(_ context.Context, mediaType string) bool {
	if mediaType != MediaTypeProjectID {
		return false
	}

	t.mu.Lock()
	t.hovered = true
	t.mu.Unlock()
	return true
}

// Drop translates the gesture into the single store mutation. Unknown IDs
// inside the payload are not an error here: the mover silently ignores them.
func (t *ColumnTarget) Drop(ctx context.Context, p Payload) error {
	if p.MediaType != MediaTypeProjectID {
		return fmt.Errorf("%w: %q", domain.ErrPayloadType, p.MediaType)
	}

	t.mu.Lock()
	t.hovered = false
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "card dropped",
		slog.String("project_id", p.Data),
		slog.String("status", t.status.String()),
	)

	t.mover.MoveProject(ctx, p.Data, t.status)
	return nil
}

// DragLeave returns the target to NotHovered, whether or not a drop occurred.
func (t *ColumnTarget) DragLeave(_ context.Context) {
	t.mu.Lock()
	t.hovered = false
	t.mu.Unlock()
}
