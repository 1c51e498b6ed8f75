package leaderboard

import (
	"context"
	"errors"

	"geowiz-backend/internal/sessions"
	"geowiz-backend/internal/users"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Entry is one ranked leaderboard row. Rank is 1-based.
type Entry struct {
	User       users.User `json:"user"`
	TotalScore int        `json:"totalScore"`
	Rank       int        `json:"rank"`
}

// ScoreSource supplies per-user completed-session score totals.
type ScoreSource interface {
	CompletedScoreTotals(ctx context.Context, limit int) ([]sessions.UserScore, error)
}

// Service ranks users by total score over completed sessions.
type Service struct {
	Scores ScoreSource
	Users  users.Repo
}

// Top returns the highest-scoring users. Players without a profile row
// render with their ID as the display name.
func (s *Service) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	totals, err := s.Scores.CompletedScoreTotals(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(totals))
	for i, total := range totals {
		user, err := s.Users.GetByID(ctx, total.UserID)
		if err != nil {
			if !errors.Is(err, users.ErrNotFound) {
				return nil, err
			}
			user = users.User{ID: total.UserID, DisplayName: total.UserID}
		}
		entries = append(entries, Entry{
			User:       user,
			TotalScore: total.TotalScore,
			Rank:       i + 1,
		})
	}
	return entries, nil
}
