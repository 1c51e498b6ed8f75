package sessions

import "errors"

var (
	// ErrNotFound indicates a session was not found or is not owned by
	// the caller.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCompleted indicates the session is already completed and can no
	// longer accept answers.
	ErrCompleted = errors.New("session already completed")
)
