package sessions

import "context"

// SessionsRepo defines persistence operations for game sessions.
type SessionsRepo interface {
	Create(ctx context.Context, s GameSession) error
	GetByID(ctx context.Context, id string) (GameSession, error)
	Update(ctx context.Context, s GameSession) error
	// ListByUser returns all sessions for a user in chronological order
	// by start time. Recency-sensitive consumers rely on that ordering.
	ListByUser(ctx context.Context, userID string) ([]GameSession, error)
	// CompletedScoreTotals sums scores over completed sessions per user,
	// highest total first, limited.
	CompletedScoreTotals(ctx context.Context, limit int) ([]UserScore, error)
}
