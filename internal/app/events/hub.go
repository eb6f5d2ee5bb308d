// Package events fans store notifications out to connected event-stream
// clients. The hub registers itself as a single store subscriber and forwards
// each snapshot to per-client buffered channels. A slow client drops frames
// instead of blocking the store's synchronous notify path: every frame is a
// full snapshot, so the next one supersedes anything missed.
package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time check for health registration.
var _ ports.HealthChecker = (*Hub)(nil)

const defaultBufferSize = 4

// Hub distributes board snapshots to event-stream clients.
type Hub struct {
	buffer  int
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu      sync.Mutex
	clients map[int]chan []domain.Project
	nextID  int
}

// NewHub creates a hub and subscribes it to the store. The subscription is
// permanent (the store has no unsubscribe), matching the hub's process-long
// lifetime. buffer is the per-client channel capacity; values < 1 fall back
// to a small default. metrics may be nil.
func NewHub(store ports.ProjectStore, buffer int, metrics *telemetry.Metrics, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if buffer < 1 {
		buffer = defaultBufferSize
	}

	h := &Hub{
		buffer:  buffer,
		logger:  logger,
		metrics: metrics,
		clients: make(map[int]chan []domain.Project),
	}
	store.Subscribe(h.publish)
	return h
}

// Register adds an event-stream client and returns its snapshot channel plus
// a cancel function. Cancel must be called when the client disconnects; the
// channel is closed by the hub.
func (h *Hub) Register() (<-chan []domain.Project, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan []domain.Project, h.buffer)
	h.clients[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.clients[id]; ok {
			delete(h.clients, id)
			close(c)
		}
	}
	return ch, cancel
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Name returns the identifier used when the hub is registered with a
// [ports.HealthRegistry].
func (h *Hub) Name() string {
	return "event-hub"
}

// HealthCheck always reports healthy; the hub has no external dependencies.
func (h *Hub) HealthCheck(_ context.Context) error {
	return nil
}

// publish is the hub's store subscription. It runs on the mutating
// goroutine, so it only performs non-blocking channel sends. Clients treat
// snapshots as read-only; the hub hands the same slice to every channel.
func (h *Hub) publish(projects []domain.Project) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.clients {
		select {
		case ch <- projects:
		default:
			h.logger.Warn("event dropped for slow client", slog.Int("client", id))
			if h.metrics != nil {
				h.metrics.EventsDropped.Add(context.Background(), 1)
			}
		}
	}
}
