package questions

import (
	"context"
	"sync"

	"geowiz-backend/internal/game"
)

// MemoryRepo is an in-memory implementation of QuestionsRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Question
	order []string // insertion order, keeps listing stable
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Question),
	}
}

// Create stores a question.
func (r *MemoryRepo) Create(ctx context.Context, q Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[q.ID]; !ok {
		r.order = append(r.order, q.ID)
	}
	r.byID[q.ID] = q
	return nil
}

// GetByID returns a question by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Question, error) {
	if err := ctx.Err(); err != nil {
		return Question{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return q, nil
}

// ListByModeRegion returns questions matching the mode and region filter.
// A global request matches every region, and global questions match every
// regional request.
func (r *MemoryRepo) ListByModeRegion(ctx context.Context, mode game.Mode, region game.Region) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Question, 0)
	for _, id := range r.order {
		q := r.byID[id]
		if q.Mode != mode {
			continue
		}
		if region == game.RegionGlobal || q.Region == region || q.Region == game.RegionGlobal {
			out = append(out, q)
		}
	}
	return out, nil
}

// SetVisual records visual media metadata for a question.
func (r *MemoryRepo) SetVisual(ctx context.Context, id, visualType, storageKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	q.VisualType = visualType
	q.VisualKey = storageKey
	r.byID[id] = q
	return nil
}

var _ QuestionsRepo = (*MemoryRepo)(nil)
