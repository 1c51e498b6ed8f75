package questions

import "errors"

var (
	// ErrNotFound indicates a question was not found.
	ErrNotFound = errors.New("question not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoVisual indicates the question has no visual media attached.
	ErrNoVisual = errors.New("question has no visual")
)
