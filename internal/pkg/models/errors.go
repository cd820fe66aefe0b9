package models

import (
	"errors"
	"fmt"
)

// Domain errors for the dispatch lifecycle. State-machine violations
// are detected locally before any network call, so they never need to
// be inferred from a server error code.
var (
	// ErrInvalidTransition means the requested status is not reachable
	// from the current status.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrDispatchTerminal means the dispatch is completed or cancelled
	// and can no longer be mutated.
	ErrDispatchTerminal = errors.New("dispatch already finished")

	// ErrDispatchNotFound means no dispatch exists for the given id.
	ErrDispatchNotFound = errors.New("dispatch not found")

	// ErrBookingNotFound means dispatch creation referenced a booking
	// that does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDriverNotFound means the fleet service has no driver for the
	// given employee id.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrIncompleteJoin means the detail view is missing one of
	// dispatch, booking or driver; callers should retry the fetch.
	ErrIncompleteJoin = errors.New("dispatch view requires dispatch, booking and driver")

	// ErrStaleDispatch means another actor changed the dispatch between
	// our read and our write; the caller must re-fetch and re-validate.
	ErrStaleDispatch = errors.New("dispatch was modified by another request")

	// ErrUpstreamFailure wraps transport or non-2xx failures from the
	// booking and fleet services.
	ErrUpstreamFailure = errors.New("upstream service failure")
)

// ValidationError reports malformed input rejected at the boundary
// before it reaches the state machine.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
