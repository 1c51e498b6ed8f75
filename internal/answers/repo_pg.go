package answers

import (
	"context"
	"database/sql"
)

// PGRepo implements AnswersRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a submitted answer.
func (r *PGRepo) Create(ctx context.Context, a Answer) error {
	const query = `
INSERT INTO game_answers (
    id,
    session_id,
    question_id,
    user_answer,
    is_correct,
    time_spent,
    answered_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var timeSpent sql.NullInt64
	if a.TimeSpent != nil {
		timeSpent = sql.NullInt64{Int64: int64(*a.TimeSpent), Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		a.ID,
		a.SessionID,
		a.QuestionID,
		a.UserAnswer,
		a.IsCorrect,
		timeSpent,
		a.AnsweredAt,
	)
	return err
}

// ListBySession returns a session's answers in submission order.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string) ([]Answer, error) {
	const query = `
SELECT id, session_id, question_id, user_answer, is_correct, time_spent, answered_at
FROM game_answers
WHERE session_id = $1
ORDER BY answered_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Answer, 0)
	for rows.Next() {
		var a Answer
		var timeSpent sql.NullInt64
		if err := rows.Scan(
			&a.ID,
			&a.SessionID,
			&a.QuestionID,
			&a.UserAnswer,
			&a.IsCorrect,
			&timeSpent,
			&a.AnsweredAt,
		); err != nil {
			return nil, err
		}
		if timeSpent.Valid {
			v := int(timeSpent.Int64)
			a.TimeSpent = &v
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ AnswersRepo = (*PGRepo)(nil)
