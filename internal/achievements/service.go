package achievements

import (
	"context"
	"time"

	"github.com/google/uuid"

	"geowiz-backend/internal/sessions"
)

// HistorySource supplies a user's session history for unlock rules that
// look beyond the just-completed session.
type HistorySource interface {
	ListByUser(ctx context.Context, userID string) ([]sessions.GameSession, error)
}

// Service evaluates unlock rules and lists unlocks.
type Service struct {
	Repo    AchievementsRepo
	History HistorySource
}

// ListByUser returns the user's unlocked achievements.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Achievement, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// SessionCompleted runs the unlock rules for a freshly completed
// session. Re-running for the same session unlocks nothing new.
func (s *Service) SessionCompleted(ctx context.Context, completed sessions.GameSession) error {
	history, err := s.History.ListByUser(ctx, completed.UserID)
	if err != nil {
		return err
	}

	completedCount := 0
	regions := make(map[string]bool)
	for _, sess := range history {
		if !sess.IsCompleted {
			continue
		}
		completedCount++
		regions[string(sess.Region)] = true
	}
	if completedCount >= 1 {
		if err := s.unlock(ctx, completed.UserID, TypeGlobeTrotter); err != nil {
			return err
		}
	}
	if completed.MaxStreak >= 10 {
		if err := s.unlock(ctx, completed.UserID, TypeStreakMaster); err != nil {
			return err
		}
	}
	if completed.QuestionsAnswered >= 5 && completed.CorrectAnswers == completed.QuestionsAnswered {
		if err := s.unlock(ctx, completed.UserID, TypePerfectGame); err != nil {
			return err
		}
	}
	if len(regions) >= 3 {
		if err := s.unlock(ctx, completed.UserID, TypeWorldExplorer); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) unlock(ctx context.Context, userID, achievementType string) error {
	has, err := s.Repo.HasType(ctx, userID, achievementType)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return s.Repo.Create(ctx, Achievement{
		ID:         uuid.NewString(),
		UserID:     userID,
		Type:       achievementType,
		UnlockedAt: time.Now().UTC(),
	})
}
