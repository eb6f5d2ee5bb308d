package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/project-board/internal/adapters/http"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/memory"
	"github.com/jsamuelsen11/project-board/internal/app/events"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
	"github.com/jsamuelsen11/project-board/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockProjectService) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	registry := mocks.NewMockHealthRegistry(t)
	store := memory.New(nil)
	hub := events.NewHub(store, 4, nil, nil)

	ph := handlers.NewProjectHandler(svc, 50)
	bh := handlers.NewBoardHandler(svc, nil)
	eh := handlers.NewEventsHandler(hub, svc, nil)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(ph, bh, eh, hh, nil)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects/bulk-move"},
		{http.MethodGet, "/api/v1/projects/{id}"},
		{http.MethodPatch, "/api/v1/projects/{id}/status"},
		{http.MethodGet, "/api/v1/projects/{id}/drag"},
		{http.MethodPost, "/api/v1/board/{column}/dragover"},
		{http.MethodPost, "/api/v1/board/{column}/dragleave"},
		{http.MethodPost, "/api/v1/board/{column}/drop"},
		{http.MethodGet, "/api/v1/events"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProjectService(t)
	registry := mocks.NewMockHealthRegistry(t)
	store := memory.New(nil)
	hub := events.NewHub(store, 4, nil, nil)

	ph := handlers.NewProjectHandler(svc, 50)
	bh := handlers.NewBoardHandler(svc, nil)
	eh := handlers.NewEventsHandler(hub, svc, nil)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(ph, bh, eh, hh, nil, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_TimeoutSkipsEventStream(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProjectService(t)
	registry := mocks.NewMockHealthRegistry(t)
	store := memory.New(nil)
	hub := events.NewHub(store, 4, nil, nil)

	ph := handlers.NewProjectHandler(svc, 50)
	bh := handlers.NewBoardHandler(svc, nil)
	eh := handlers.NewEventsHandler(hub, svc, nil)
	hh := handlers.NewHealthHandler(registry)

	// Stand-in for the timeout middleware that marks responses it wrapped.
	marker := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Timed", "1")
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(ph, bh, eh, hh, marker)

	svc.EXPECT().ListProjects(mock.Anything, ports.Filter{}).Return([]domain.Project{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	if rec.Header().Get("X-Timed") != "1" {
		t.Error("project route did not pass through the timeout middleware")
	}

	// A pre-canceled context ends the stream right after the initial frame.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	router.ServeHTTP(rec, req)
	if rec.Header().Get("X-Timed") != "" {
		t.Error("event stream passed through the timeout middleware")
	}
	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("event stream Content-Type = %q, want %q", got, "text/event-stream")
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().ListProjects(mock.Anything, ports.Filter{}).Return([]domain.Project{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationDropRoute(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().MoveProject(mock.Anything, "p1", domain.StatusFinished).Return()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/board/finished/drop", strings.NewReader("p1"))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
