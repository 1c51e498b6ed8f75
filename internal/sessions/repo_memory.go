package sessions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of SessionsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]GameSession
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]GameSession),
	}
}

// Create stores a new session.
func (r *MemoryRepo) Create(ctx context.Context, s GameSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	return nil
}

// GetByID returns a session by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (GameSession, error) {
	if err := ctx.Err(); err != nil {
		return GameSession{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return GameSession{}, ErrNotFound
	}
	return s, nil
}

// Update overwrites a stored session.
func (r *MemoryRepo) Update(ctx context.Context, s GameSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

// ListByUser returns a user's sessions ordered by start time, oldest
// first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]GameSession, 0)
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}

// CompletedScoreTotals sums completed-session scores per user, highest
// first.
func (r *MemoryRepo) CompletedScoreTotals(ctx context.Context, limit int) ([]UserScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	totals := make(map[string]int)
	for _, s := range r.byID {
		if s.IsCompleted {
			totals[s.UserID] += s.Score
		}
	}
	r.mu.RUnlock()

	out := make([]UserScore, 0, len(totals))
	for userID, total := range totals {
		out = append(out, UserScore{UserID: userID, TotalScore: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalScore == out[j].TotalScore {
			return out[i].UserID < out[j].UserID
		}
		return out[i].TotalScore > out[j].TotalScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ SessionsRepo = (*MemoryRepo)(nil)
