package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrRsvpNotFound  = errors.New("rsvp not found")
)

var (
	ErrCapacityExceeded = errors.New("event capacity exceeded")
	ErrDuplicateName    = errors.New("name already exists for this event")
)

var (
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)

// CapacityError reports how many spots remain so callers can render
// a precise rejection message.
type CapacityError struct {
	Requested int
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event capacity exceeded: %d attendees requested, %d spots remain", e.Requested, e.Remaining)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
