package questions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"geowiz-backend/internal/game"
)

// PGRepo implements QuestionsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new question.
func (r *PGRepo) Create(ctx context.Context, q Question) error {
	const query = `
INSERT INTO questions (
    id,
    mode,
    region,
    question_text,
    hint,
    answer,
    alternative_answers,
    fun_fact,
    difficulty,
    visual_type,
    visual_key
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	alternatives, err := json.Marshal(q.AlternativeAnswers)
	if err != nil {
		return fmt.Errorf("marshal alternative answers: %w", err)
	}

	var visualKey sql.NullString
	if q.VisualKey != "" {
		visualKey = sql.NullString{String: q.VisualKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		q.ID,
		string(q.Mode),
		string(q.Region),
		q.QuestionText,
		q.Hint,
		q.Answer,
		alternatives,
		q.FunFact,
		q.Difficulty,
		q.VisualType,
		visualKey,
	)
	return err
}

const questionColumns = `id, mode, region, question_text, hint, answer, alternative_answers, fun_fact, difficulty, visual_type, visual_key`

// GetByID fetches a question by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Question, error) {
	query := `
SELECT ` + questionColumns + `
FROM questions
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, ErrNotFound
		}
		return Question{}, err
	}
	return q, nil
}

// ListByModeRegion returns questions matching the mode and region filter.
func (r *PGRepo) ListByModeRegion(ctx context.Context, mode game.Mode, region game.Region) ([]Question, error) {
	query := `
SELECT ` + questionColumns + `
FROM questions
WHERE mode = $1 AND ($2 = 'global' OR region = $2 OR region = 'global')
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, string(mode), string(region))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// SetVisual records visual media metadata for a question.
func (r *PGRepo) SetVisual(ctx context.Context, id, visualType, storageKey string) error {
	const query = `
UPDATE questions
SET visual_type = $1, visual_key = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, visualType, storageKey, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (Question, error) {
	var q Question
	var mode, region string
	var hint sql.NullString
	var alternatives []byte
	var funFact sql.NullString
	var visualType sql.NullString
	var visualKey sql.NullString
	err := row.Scan(
		&q.ID,
		&mode,
		&region,
		&q.QuestionText,
		&hint,
		&q.Answer,
		&alternatives,
		&funFact,
		&q.Difficulty,
		&visualType,
		&visualKey,
	)
	if err != nil {
		return Question{}, err
	}
	q.Mode = game.Mode(mode)
	q.Region = game.Region(region)
	if hint.Valid {
		q.Hint = hint.String
	}
	if len(alternatives) > 0 {
		if err := json.Unmarshal(alternatives, &q.AlternativeAnswers); err != nil {
			return Question{}, fmt.Errorf("unmarshal alternative answers: %w", err)
		}
	}
	if funFact.Valid {
		q.FunFact = funFact.String
	}
	if visualType.Valid {
		q.VisualType = visualType.String
	}
	if visualKey.Valid {
		q.VisualKey = visualKey.String
	}
	return q, nil
}

var _ QuestionsRepo = (*PGRepo)(nil)
