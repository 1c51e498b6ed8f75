package sessions

import (
	"context"
	"database/sql"
	"errors"

	"geowiz-backend/internal/game"
)

// PGRepo implements SessionsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, s GameSession) error {
	const query = `
INSERT INTO game_sessions (
    id,
    user_id,
    mode,
    region,
    score,
    questions_answered,
    correct_answers,
    current_streak,
    max_streak,
    is_completed,
    started_at,
    completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var completedAt sql.NullTime
	if s.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *s.CompletedAt, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.UserID,
		string(s.Mode),
		string(s.Region),
		s.Score,
		s.QuestionsAnswered,
		s.CorrectAnswers,
		s.CurrentStreak,
		s.MaxStreak,
		s.IsCompleted,
		s.StartedAt,
		completedAt,
	)
	return err
}

const sessionColumns = `id, user_id, mode, region, score, questions_answered, correct_answers, current_streak, max_streak, is_completed, started_at, completed_at`

// GetByID fetches a session by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (GameSession, error) {
	query := `
SELECT ` + sessionColumns + `
FROM game_sessions
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GameSession{}, ErrNotFound
		}
		return GameSession{}, err
	}
	return s, nil
}

// Update overwrites the mutable counters and completion state.
func (r *PGRepo) Update(ctx context.Context, s GameSession) error {
	const query = `
UPDATE game_sessions
SET score = $1,
    questions_answered = $2,
    correct_answers = $3,
    current_streak = $4,
    max_streak = $5,
    is_completed = $6,
    completed_at = $7
WHERE id = $8`

	var completedAt sql.NullTime
	if s.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *s.CompletedAt, Valid: true}
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		s.Score,
		s.QuestionsAnswered,
		s.CorrectAnswers,
		s.CurrentStreak,
		s.MaxStreak,
		s.IsCompleted,
		completedAt,
		s.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns a user's sessions ordered by start time, oldest
// first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]GameSession, error) {
	query := `
SELECT ` + sessionColumns + `
FROM game_sessions
WHERE user_id = $1
ORDER BY started_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CompletedScoreTotals sums completed-session scores per user, highest
// first.
func (r *PGRepo) CompletedScoreTotals(ctx context.Context, limit int) ([]UserScore, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
SELECT user_id, SUM(score) AS total_score
FROM game_sessions
WHERE is_completed = TRUE
GROUP BY user_id
ORDER BY total_score DESC, user_id ASC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserScore, 0)
	for rows.Next() {
		var us UserScore
		if err := rows.Scan(&us.UserID, &us.TotalScore); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (GameSession, error) {
	var s GameSession
	var mode, region string
	var completedAt sql.NullTime
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&mode,
		&region,
		&s.Score,
		&s.QuestionsAnswered,
		&s.CorrectAnswers,
		&s.CurrentStreak,
		&s.MaxStreak,
		&s.IsCompleted,
		&s.StartedAt,
		&completedAt,
	)
	if err != nil {
		return GameSession{}, err
	}
	s.Mode = game.Mode(mode)
	s.Region = game.Region(region)
	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	return s, nil
}

var _ SessionsRepo = (*PGRepo)(nil)
