package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is a user-created card on the board. Identity and descriptive
// fields are fixed at creation; Status is the only field that changes
// afterwards, and only through the store's move operation. Projects are
// never deleted.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = msgRequired
	}
	if p.People <= 0 {
		fields["people"] = fmt.Sprintf("must be positive, got %d", p.People)
	}
	if p.Status != "" && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
