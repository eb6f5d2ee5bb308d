// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
// Projects appear in creation order; clients filter by status per column.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO.
func ToProjectListResponse(projects []domain.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// DropResponse represents the outcome of a drop on a column target.
type DropResponse struct {
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
}

// ColumnStateResponse reports a drop target's hover state machine.
type ColumnStateResponse struct {
	Status   string `json:"status"`
	Accepted bool   `json:"accepted"`
	Hovered  bool   `json:"hovered"`
}

// BulkMoveResponse represents the result of a bulk move operation.
type BulkMoveResponse struct {
	Completed int                 `json:"completed"`
	Failed    int                 `json:"failed"`
	Errors    []BulkMoveErrorItem `json:"errors,omitempty"`
}

// BulkMoveErrorItem represents a single dropped move within a bulk operation.
type BulkMoveErrorItem struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ToBulkMoveResponse converts a ports.BulkMoveResult to an HTTP response DTO.
func ToBulkMoveResponse(result *ports.BulkMoveResult) BulkMoveResponse {
	errs := make([]BulkMoveErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkMoveErrorItem{
			ID:      e.ID,
			Message: e.Err.Error(),
		}
	}

	return BulkMoveResponse{
		Completed: result.Completed,
		Failed:    len(result.Errors),
		Errors:    errs,
	}
}
