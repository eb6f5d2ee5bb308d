package domain

import "fmt"

// Status represents which board column a Project belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a Status.
// Returns a *ValidationError (wrapping ErrValidation) for unknown values.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", &ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", raw)},
		}
	}
	return s, nil
}
