package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the session id does not resolve, or the caller is not
	// a participant and must not learn that it exists.
	ErrNotFound = errors.New("session not found")

	// ErrConflict: the store rejected a write because the session changed
	// since it was read. The caller should refetch and retry.
	ErrConflict = errors.New("session was modified concurrently")
)

// ValidationError covers malformed dates/times, missing fields, and
// booking a past slot as a patient. The session is unaffected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IllegalStateError: the operation is not permitted from the session's
// current state. The state is included so the caller can refresh its view.
type IllegalStateError struct {
	Op    string
	State Status
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("cannot %s a session in state %q", e.Op, e.State)
}

// UnauthorizedError: the actor is a participant but is acting out of turn,
// e.g. a proposer deciding their own edit request.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string { return e.Reason }
