package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// ProjectService defines the service port for board operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns a snapshot of projects in creation order,
	// optionally filtered by status.
	ListProjects(ctx context.Context, filter Filter) []domain.Project

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// CreateProject validates and creates a new project. The returned entity
	// carries the store-assigned ID, the active status, and the creation time.
	// Returns domain.ErrValidation if the project fails validation; the store
	// is not touched in that case.
	CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)

	// MoveProject reassigns a project to the given status column. Unknown IDs
	// and moves to the current status are silent no-ops; there is no error path.
	MoveProject(ctx context.Context, id string, status domain.Status)

	// BulkMoveProjects applies several moves concurrently with partial
	// success semantics: each move succeeds or is dropped independently.
	// Per-item failures (only context cancellation can produce one) are
	// collected in BulkMoveResult.Errors.
	BulkMoveProjects(ctx context.Context, moves []ProjectMove) *BulkMoveResult
}

// Filter narrows ListProjects results. A nil Status means "all columns".
type Filter struct {
	Status *domain.Status
}

// ProjectMove pairs a project ID with its destination status for bulk operations.
type ProjectMove struct {
	ID     string
	Status domain.Status
}

// BulkMoveError records a single failed move within a bulk operation.
type BulkMoveError struct {
	ID  string
	Err error
}

// BulkMoveResult holds the outcomes of a bulk move operation.
// Completed counts moves handed to the store; Errors contains per-item failures.
type BulkMoveResult struct {
	Completed int
	Errors    []BulkMoveError
}
