package achievements

import "context"

// AchievementsRepo defines persistence operations for unlocks.
type AchievementsRepo interface {
	Create(ctx context.Context, a Achievement) error
	ListByUser(ctx context.Context, userID string) ([]Achievement, error)
	HasType(ctx context.Context, userID, achievementType string) (bool, error)
}
