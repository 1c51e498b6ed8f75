package achievements

import (
	"context"
	"database/sql"
)

// PGRepo implements AchievementsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create stores an unlock. The unique (user_id, achievement_type)
// constraint is absorbed so concurrent evaluations stay idempotent.
func (r *PGRepo) Create(ctx context.Context, a Achievement) error {
	const query = `
INSERT INTO achievements (id, user_id, achievement_type, unlocked_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, achievement_type) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, a.ID, a.UserID, a.Type, a.UnlockedAt)
	return err
}

// ListByUser returns a user's unlocks, oldest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Achievement, error) {
	const query = `
SELECT id, user_id, achievement_type, unlocked_at
FROM achievements
WHERE user_id = $1
ORDER BY unlocked_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Achievement, 0)
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.UnlockedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// HasType reports whether the user already unlocked the type.
func (r *PGRepo) HasType(ctx context.Context, userID, achievementType string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM achievements WHERE user_id = $1 AND achievement_type = $2
)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID, achievementType).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ AchievementsRepo = (*PGRepo)(nil)
