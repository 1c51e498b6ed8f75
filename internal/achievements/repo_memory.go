package achievements

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of AchievementsRepo.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]Achievement
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byUser: make(map[string][]Achievement),
	}
}

// Create stores an unlock.
func (r *MemoryRepo) Create(ctx context.Context, a Achievement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[a.UserID] = append(r.byUser[a.UserID], a)
	return nil
}

// ListByUser returns a user's unlocks in unlock order.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Achievement, len(r.byUser[userID]))
	copy(out, r.byUser[userID])
	return out, nil
}

// HasType reports whether the user already unlocked the type.
func (r *MemoryRepo) HasType(ctx context.Context, userID, achievementType string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.byUser[userID] {
		if a.Type == achievementType {
			return true, nil
		}
	}
	return false, nil
}

var _ AchievementsRepo = (*MemoryRepo)(nil)
