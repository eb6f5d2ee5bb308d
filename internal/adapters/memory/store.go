// Package memory provides the in-memory ProjectStore adapter: the single
// authoritative holder of all projects and the sole mutator of their status.
// The store keeps projects in creation order, never removes one, and pushes
// a fresh snapshot to every subscriber after each accepted mutation.
package memory

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time checks that Store implements its ports.
var (
	_ ports.ProjectStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is the canonical project list with a publish side-channel.
//
// The list and the subscriber slice are guarded by a mutex; notifications are
// delivered outside the lock but still synchronously on the mutating
// goroutine, so when Create or Move returns, every subscriber has already
// observed the new state. Subscribers must therefore be fast and must not
// block.
type Store struct {
	mu          sync.Mutex
	projects    []domain.Project
	subscribers []ports.Subscriber
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store.
func New(logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new project and notifies subscribers. The store assigns
// the ID, the active status, and the creation timestamp; everything else is
// taken from p as-is. Validation is the caller's responsibility.
func (s *Store) Create(ctx context.Context, p domain.Project) domain.Project {
	p.ID = newID()
	p.Status = domain.StatusActive
	p.CreatedAt = s.now().UTC()

	s.mu.Lock()
	s.projects = append(s.projects, p)
	subs, snapshots := s.pendingNotifications()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "project created",
		slog.String("project_id", p.ID),
		slog.String("title", p.Title),
	)

	s.deliver(ctx, subs, snapshots)
	return p
}

// Move changes a project's status and notifies subscribers. Unknown IDs are
// ignored so stale drag payloads stay harmless, and a move to the current
// status does not notify, avoiding redundant redraws.
func (s *Store) Move(ctx context.Context, id string, status domain.Status) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "move ignored: unknown project",
			slog.String("project_id", id),
		)
		return
	}
	if s.projects[idx].Status == status {
		s.mu.Unlock()
		return
	}

	s.projects[idx].Status = status
	subs, snapshots := s.pendingNotifications()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "project moved",
		slog.String("project_id", id),
		slog.String("status", status.String()),
	)

	s.deliver(ctx, subs, snapshots)
}

// Subscribe registers fn for all future notifications. Registration is
// append-only; fn is not invoked until the next mutation.
func (s *Store) Subscribe(fn ports.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns an independent copy of the project list in creation order.
func (s *Store) Snapshot() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyProjects()
}

// Find returns a copy of the project with the given ID, or false.
func (s *Store) Find(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Project{}, false
	}
	return s.projects[idx], true
}

// Name returns the identifier used when the store is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "project-store"
}

// HealthCheck reports the store's health. An in-process store has no failure
// modes beyond the process itself, so this always returns nil; registering it
// keeps the readiness payload listing the component.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}

// indexOf returns the position of the project with the given ID, or -1.
// Must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

// copyProjects duplicates the canonical list. Project has value semantics
// (no reference fields), so a slice copy is a full snapshot.
// Must be called with s.mu held.
func (s *Store) copyProjects() []domain.Project {
	snapshot := make([]domain.Project, len(s.projects))
	copy(snapshot, s.projects)
	return snapshot
}

// pendingNotifications copies the subscriber list and prepares one
// independent snapshot per subscriber, so a subscriber mutating its slice
// cannot affect the store or any other subscriber's view.
// Must be called with s.mu held.
func (s *Store) pendingNotifications() ([]ports.Subscriber, [][]domain.Project) {
	subs := make([]ports.Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)

	snapshots := make([][]domain.Project, len(subs))
	for i := range snapshots {
		snapshots[i] = s.copyProjects()
	}
	return subs, snapshots
}

// deliver invokes subscribers in subscription order. A panicking subscriber
// is recovered and logged so the remaining subscribers still run.
func (s *Store) deliver(ctx context.Context, subs []ports.Subscriber, snapshots [][]domain.Project) {
	for i, fn := range subs {
		s.notifyOne(ctx, i, fn, snapshots[i])
	}
}

func (s *Store) notifyOne(ctx context.Context, idx int, fn ports.Subscriber, snapshot []domain.Project) {
	defer func() {
		if v := recover(); v != nil {
			s.logger.ErrorContext(ctx, "subscriber panicked",
				slog.Int("subscriber", idx),
				slog.String("panic", fmt.Sprint(v)),
			)
		}
	}()
	fn(snapshot)
}

// UUID v4 bit manipulation constants.
const (
	uuidVersion4    = 0x40 // Version 4 (random) in bits 4-7 of byte 6.
	uuidVersionMask = 0x0f // Mask to clear version bits before setting.
	uuidVariant10   = 0x80 // RFC 4122 variant (10xx) in bits 6-7 of byte 8.
	uuidVariantMask = 0x3f // Mask to clear variant bits before setting.
)

// newID produces a UUID v4 string using crypto/rand. IDs are never reused;
// the 122 random bits make collisions irrelevant for a board's lifetime.
func newID() string {
	var uuid [16]byte
	_, _ = rand.Read(uuid[:])

	uuid[6] = (uuid[6] & uuidVersionMask) | uuidVersion4
	uuid[8] = (uuid[8] & uuidVariantMask) | uuidVariant10

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uuid[0:4], uuid[4:6], uuid[6:8], uuid[8:10], uuid[10:16])
}
