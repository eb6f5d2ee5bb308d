// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-board/internal/app/fanout"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time check that BoardService implements ports.ProjectService.
var _ ports.ProjectService = (*BoardService)(nil)

const defaultBulkWorkers = 4

// BoardService implements ports.ProjectService on top of the store port.
// It is the caller-side boundary the store relies on: entity validation,
// structured logging, and metrics live here, while the store itself stays
// validation-free and notification-focused.
type BoardService struct {
	store       ports.ProjectStore
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	bulkWorkers int
}

// NewBoardService creates a BoardService. metrics may be nil (recording is
// skipped). bulkWorkers bounds the concurrency of BulkMoveProjects; values
// < 1 fall back to a small default.
func NewBoardService(store ports.ProjectStore, metrics *telemetry.Metrics, logger *slog.Logger, bulkWorkers int) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if bulkWorkers < 1 {
		bulkWorkers = defaultBulkWorkers
	}
	return &BoardService{
		store:       store,
		logger:      logger,
		metrics:     metrics,
		bulkWorkers: bulkWorkers,
	}
}

// ListProjects returns a snapshot in creation order, optionally filtered by
// status. Filtering happens here so every subscriber and caller sees the
// same canonical ordering.
func (s *BoardService) ListProjects(ctx context.Context, filter ports.Filter) []domain.Project {
	s.logger.DebugContext(ctx, "listing projects")

	snapshot := s.store.Snapshot()
	if filter.Status == nil {
		return snapshot
	}

	filtered := make([]domain.Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == *filter.Status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProject returns a single project by ID.
func (s *BoardService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	for _, p := range s.store.Snapshot() {
		if p.ID == id {
			return &p, nil
		}
	}

	s.logger.DebugContext(ctx, "project not found", slog.String("project_id", id))
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

// CreateProject validates and creates a new project. The store is not
// touched on validation failure; no partial project ever exists.
func (s *BoardService) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", p.Title))

	if err := p.Validate(); err != nil {
		s.logger.WarnContext(ctx, "project rejected",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created := s.store.Create(ctx, *p)

	if s.metrics != nil {
		s.metrics.ProjectsCreated.Add(ctx, 1)
	}
	return &created, nil
}

// MoveProject reassigns a project to the given status column. The store's
// policies apply: unknown IDs and same-status moves are silent no-ops.
func (s *BoardService) MoveProject(ctx context.Context, id string, status domain.Status) {
	s.store.Move(ctx, id, status)

	if s.metrics != nil {
		s.metrics.ProjectsMoved.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrBoardStatus.String(status.String()),
		))
	}
}

// BulkMoveProjects applies several moves with bounded concurrency and
// partial success semantics. Individual moves cannot fail (the store
// absorbs unknown IDs); the only per-item error is context cancellation
// while waiting for a worker slot.
func (s *BoardService) BulkMoveProjects(ctx context.Context, moves []ports.ProjectMove) *ports.BulkMoveResult {
	s.logger.InfoContext(ctx, "bulk moving projects", slog.Int("count", len(moves)))

	results := fanout.Run(ctx, s.bulkWorkers, moves,
		func(ctx context.Context, m ports.ProjectMove) (struct{}, error) {
			s.MoveProject(ctx, m.ID, m.Status)
			return struct{}{}, nil
		})

	out := &ports.BulkMoveResult{}
	for i, res := range results {
		if res.Err != nil {
			s.logger.WarnContext(ctx, "bulk move item dropped",
				slog.String("operation", "BulkMoveProjects"),
				slog.String("project_id", moves[i].ID),
				slog.Any("error", res.Err),
			)
			out.Errors = append(out.Errors, ports.BulkMoveError{ID: moves[i].ID, Err: res.Err})
			continue
		}
		out.Completed++
	}
	return out
}
