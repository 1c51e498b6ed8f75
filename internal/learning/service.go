package learning

import (
	"context"

	"geowiz-backend/internal/sessions"
)

// SessionSource supplies a user's history in chronological order.
type SessionSource interface {
	History(ctx context.Context, userID string) ([]sessions.GameSession, error)
}

// Service fetches a user's history and runs the engine over it.
type Service struct {
	Sessions SessionSource
}

// Insights computes performance insights for a user.
func (s *Service) Insights(ctx context.Context, userID string) ([]Insight, error) {
	history, err := s.Sessions.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return AnalyzePerformance(history), nil
}

// Recommendations computes next-step suggestions for a user.
func (s *Service) Recommendations(ctx context.Context, userID string) ([]Recommendation, error) {
	history, err := s.Sessions.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Recommend(history), nil
}
