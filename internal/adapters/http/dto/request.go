package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

const (
	msgRequired = "is required"

	// Boundary constraints for new projects. The bounds feed domain.Valid,
	// which compares strictly, so a description needs at least 5 characters
	// and people must land in 1..5.
	descriptionMinLength = 4
	peopleFloor          = 0
	peopleCeiling        = 6
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Validate checks the request against the board's input constraints using the
// domain constraint predicate. On failure the creation is abandoned before
// the store is touched. Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if !domain.Valid(r.Title, domain.Rule{Required: true}) {
		fields["title"] = msgRequired
	}

	minLen := descriptionMinLength
	if !domain.Valid(r.Description, domain.Rule{Required: true, MinLength: &minLen}) {
		fields["description"] = fmt.Sprintf("must be longer than %d characters", descriptionMinLength)
	}

	floor, ceiling := peopleFloor, peopleCeiling
	if !domain.Valid(r.People, domain.Rule{Required: true, Min: &floor, Max: &ceiling}) {
		fields["people"] = fmt.Sprintf("must be between %d and %d, got %d", peopleFloor+1, peopleCeiling-1, r.People)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveProjectRequest represents the JSON body for reassigning a project's column.
type MoveProjectRequest struct {
	Status string `json:"status"`
}

// Validate checks that the destination status is one of the board's columns.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Status) == "" {
		fields["status"] = msgRequired
	} else if !domain.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BulkMoveRequest represents the JSON body for moving several projects at once.
type BulkMoveRequest struct {
	Moves []BulkMoveItem `json:"moves"`
}

// BulkMoveItem pairs a project ID with its destination column.
type BulkMoveItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Validate checks that every move names a project and a known column.
// Returns a *domain.ValidationError if any checks fail.
func (r *BulkMoveRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Moves) == 0 {
		fields["moves"] = "must not be empty"
	}
	for i, m := range r.Moves {
		if strings.TrimSpace(m.ID) == "" {
			fields[fmt.Sprintf("moves[%d].id", i)] = msgRequired
		}
		if !domain.Status(m.Status).IsValid() {
			fields[fmt.Sprintf("moves[%d].status", i)] = fmt.Sprintf("invalid: %q", m.Status)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
