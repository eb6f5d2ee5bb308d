// Package handlers provides HTTP request handlers for the board's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectHandler handles HTTP requests for project listing, creation, and
// column reassignment.
type ProjectHandler struct {
	svc          ports.ProjectService
	maxBulkItems int
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
// maxBulkItems caps the number of moves accepted per bulk request; values < 1
// disable the cap.
func NewProjectHandler(svc ports.ProjectService, maxBulkItems int) *ProjectHandler {
	return &ProjectHandler{svc: svc, maxBulkItems: maxBulkItems}
}

// ListProjects handles GET /api/v1/projects. The optional ?status= query
// parameter narrows the listing to one column.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := statusFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects := h.svc.ListProjects(r.Context(), filter)
	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		People:      req.People,
	}

	created, err := h.svc.CreateProject(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// MoveProject handles PATCH /api/v1/projects/{id}/status. Unknown IDs and
// moves to the current column are silent no-ops, so the response is always
// 204 once the request itself is well formed.
func (h *ProjectHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.svc.MoveProject(r.Context(), id, domain.Status(req.Status))
	w.WriteHeader(http.StatusNoContent)
}

// BulkMoveProjects handles POST /api/v1/projects/bulk-move.
func (h *ProjectHandler) BulkMoveProjects(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkMoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if h.maxBulkItems > 0 && len(req.Moves) > h.maxBulkItems {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"moves": "exceeds the bulk move limit"},
		})
		return
	}

	moves := make([]ports.ProjectMove, len(req.Moves))
	for i, m := range req.Moves {
		moves[i] = ports.ProjectMove{
			ID:     m.ID,
			Status: domain.Status(m.Status),
		}
	}

	result := h.svc.BulkMoveProjects(r.Context(), moves)
	writeJSON(w, http.StatusOK, dto.ToBulkMoveResponse(result))
}
