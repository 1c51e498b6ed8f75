package answers

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of AnswersRepo.
type MemoryRepo struct {
	mu        sync.RWMutex
	bySession map[string][]Answer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bySession: make(map[string][]Answer),
	}
}

// Create appends an answer to its session's log.
func (r *MemoryRepo) Create(ctx context.Context, a Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySession[a.SessionID] = append(r.bySession[a.SessionID], a)
	return nil
}

// ListBySession returns a session's answers in submission order.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string) ([]Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Answer, len(r.bySession[sessionID]))
	copy(out, r.bySession[sessionID])
	return out, nil
}

var _ AnswersRepo = (*MemoryRepo)(nil)
