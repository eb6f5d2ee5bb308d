package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// Subscriber is a callback invoked after every accepted store mutation.
// Each invocation receives its own snapshot of the full project list in
// creation order; mutating it never affects the store or other subscribers.
type Subscriber func(projects []domain.Project)

// ProjectStore defines the store port for the board's canonical project list.
// Implemented by the memory adapter; called by the application layer and the
// event hub. The store is the single source of truth: it owns the list, is
// the sole mutator of project status, and notifies subscribers synchronously
// and in subscription order before Create/Move return.
type ProjectStore interface {
	// Create appends a new project with a fresh unique ID, active status, and
	// creation timestamp, then notifies subscribers. The store performs no
	// validation; callers validate before reaching it.
	Create(ctx context.Context, p domain.Project) domain.Project

	// Move changes a project's status in place and notifies subscribers.
	// Unknown IDs are ignored (stale drag payloads are harmless) and moves to
	// the current status do not notify (no redundant redraws).
	Move(ctx context.Context, id string, status domain.Status)

	// Subscribe registers fn for all future notifications. Registration is
	// append-only; there is no unsubscribe. fn is not invoked with current
	// state at registration time — call Snapshot for that.
	Subscribe(fn Subscriber)

	// Snapshot returns an independent copy of the project list in creation order.
	Snapshot() []domain.Project
}
