package questions

import (
	"context"

	"geowiz-backend/internal/game"
)

// QuestionsRepo defines persistence operations for the question bank.
type QuestionsRepo interface {
	Create(ctx context.Context, q Question) error
	GetByID(ctx context.Context, id string) (Question, error)
	ListByModeRegion(ctx context.Context, mode game.Mode, region game.Region) ([]Question, error)
	SetVisual(ctx context.Context, id, visualType, storageKey string) error
}
