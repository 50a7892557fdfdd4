package domain

import "errors"

// Sentinel errors for event operations.
var (
	ErrNotFound       = errors.New("event not found")
	ErrDuplicateEvent = errors.New("an event with the same title and date already exists")
	ErrInvalidID      = errors.New("invalid event id")
)

// ValidationError reports a field that failed a business validation rule.
// Callers match the broad class with errors.As and the canonical instances
// below with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Canonical validation failures.
var (
	ErrInvalidEmail    = &ValidationError{Field: "organizer", Reason: "must be a valid email address"}
	ErrPastDate        = &ValidationError{Field: "date", Reason: "must not be in the past"}
	ErrInvalidCapacity = &ValidationError{Field: "capacity", Reason: "must be greater than zero"}
)
