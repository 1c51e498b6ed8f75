package sessions

import (
	"time"

	"geowiz-backend/internal/game"
)

// GameSession records one play-through of a mode/region pairing. Counters
// grow additively as answers come in; the record freezes once completed.
type GameSession struct {
	ID                string
	UserID            string
	Mode              game.Mode
	Region            game.Region
	Score             int
	QuestionsAnswered int
	CorrectAnswers    int
	CurrentStreak     int
	MaxStreak         int
	IsCompleted       bool
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// UserScore is one leaderboard aggregation row: total score over a user's
// completed sessions.
type UserScore struct {
	UserID     string
	TotalScore int
}
