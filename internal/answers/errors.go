package answers

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionNotFound indicates the target session does not exist or
	// belongs to another user.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted indicates the session no longer accepts
	// answers.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrQuestionNotFound indicates the answered question does not
	// exist.
	ErrQuestionNotFound = errors.New("question not found")
)
