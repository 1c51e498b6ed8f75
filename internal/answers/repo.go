package answers

import "context"

// AnswersRepo defines persistence operations for submitted answers.
type AnswersRepo interface {
	Create(ctx context.Context, a Answer) error
	ListBySession(ctx context.Context, sessionID string) ([]Answer, error)
}
