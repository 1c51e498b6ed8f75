package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/shared/metrics"
)

// CompletionHook is invoked after a session transitions to completed.
// Implementations must tolerate being called at most once per session.
type CompletionHook interface {
	SessionCompleted(ctx context.Context, s GameSession) error
}

// Service contains business logic for game sessions.
type Service struct {
	Repo SessionsRepo

	// OnCompleted, when set, runs after a session completes. Errors are
	// returned to the caller so unlock failures are visible.
	OnCompleted CompletionHook
}

// Start creates a new session with zeroed counters.
func (s *Service) Start(ctx context.Context, userID string, mode game.Mode, region game.Region) (GameSession, error) {
	if strings.TrimSpace(userID) == "" {
		return GameSession{}, ErrInvalidInput
	}

	session := GameSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mode:      mode,
		Region:    region,
		StartedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return GameSession{}, err
	}
	metrics.IncSessionStarted()
	return session, nil
}

// Get returns a session owned by the user. Foreign sessions read as not
// found so existence is not leaked.
func (s *Service) Get(ctx context.Context, userID, id string) (GameSession, error) {
	session, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return GameSession{}, err
	}
	if session.UserID != userID {
		return GameSession{}, ErrNotFound
	}
	return session, nil
}

// RecordAnswer applies one answer to the session's counters and returns
// the updated session plus the score earned. A correct answer is worth
// 100 points plus a streak bonus of 10 points per consecutive correct
// answer already on the board.
func (s *Service) RecordAnswer(ctx context.Context, userID, id string, correct bool) (GameSession, int, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return GameSession{}, 0, err
	}
	if session.IsCompleted {
		return GameSession{}, 0, ErrCompleted
	}

	scoreEarned := 0
	session.QuestionsAnswered++
	if correct {
		scoreEarned = 100 + session.CurrentStreak*10
		session.CorrectAnswers++
		session.CurrentStreak++
		if session.CurrentStreak > session.MaxStreak {
			session.MaxStreak = session.CurrentStreak
		}
		session.Score += scoreEarned
	} else {
		session.CurrentStreak = 0
	}

	if err := s.Repo.Update(ctx, session); err != nil {
		return GameSession{}, 0, err
	}
	return session, scoreEarned, nil
}

// Complete marks the session finished. Completing an already-completed
// session is a no-op returning the stored record.
func (s *Service) Complete(ctx context.Context, userID, id string) (GameSession, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return GameSession{}, err
	}
	if session.IsCompleted {
		return session, nil
	}

	now := time.Now().UTC()
	session.IsCompleted = true
	session.CompletedAt = &now
	if err := s.Repo.Update(ctx, session); err != nil {
		return GameSession{}, err
	}

	metrics.IncSessionCompleted()
	metrics.ObserveSessionDurationMs(float64(now.Sub(session.StartedAt).Milliseconds()))

	if s.OnCompleted != nil {
		if err := s.OnCompleted.SessionCompleted(ctx, session); err != nil {
			return GameSession{}, err
		}
	}
	return session, nil
}

// History returns all of the user's sessions in chronological order.
func (s *Service) History(ctx context.Context, userID string) ([]GameSession, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// CompletedScoreTotals exposes the leaderboard aggregation.
func (s *Service) CompletedScoreTotals(ctx context.Context, limit int) ([]UserScore, error) {
	return s.Repo.CompletedScoreTotals(ctx, limit)
}
