package questions

import (
	"context"
	"io"
	"math/rand"
	"strings"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/shared/storage/object"
)

const defaultListLimit = 10

// Service contains business logic for the question bank.
type Service struct {
	Repo  QuestionsRepo
	Store object.ObjectStore
}

// List returns up to limit questions for the given mode and region,
// shuffled. Gameplay order is intentionally random; only the filter is
// deterministic.
func (s *Service) List(ctx context.Context, mode game.Mode, region game.Region, limit int) ([]Question, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	matched, err := s.Repo.ListByModeRegion(ctx, mode, region)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Get returns a single question by ID.
func (s *Service) Get(ctx context.Context, id string) (Question, error) {
	if strings.TrimSpace(id) == "" {
		return Question{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// CheckAnswer reports whether the submitted answer matches the question's
// accepted answers. Comparison is case-insensitive with surrounding
// whitespace ignored.
func CheckAnswer(q Question, submitted string) bool {
	normalized := strings.ToLower(strings.TrimSpace(submitted))
	if normalized == "" {
		return false
	}
	if normalized == strings.ToLower(strings.TrimSpace(q.Answer)) {
		return true
	}
	for _, alt := range q.AlternativeAnswers {
		if normalized == strings.ToLower(strings.TrimSpace(alt)) {
			return true
		}
	}
	return false
}

// UploadVisual saves visual media for a question to object storage and
// records its storage key.
func (s *Service) UploadVisual(ctx context.Context, id, visualType, fileName string, r io.Reader) (Question, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return Question{}, err
	}

	visualType = strings.ToLower(strings.TrimSpace(visualType))
	if visualType == "" {
		visualType = "image"
	}

	storageKey, _, _, err := s.Store.Save(ctx, "questions", fileName, r)
	if err != nil {
		return Question{}, err
	}

	if err := s.Repo.SetVisual(ctx, id, visualType, storageKey); err != nil {
		return Question{}, err
	}

	q.VisualType = visualType
	q.VisualKey = storageKey
	return q, nil
}

// OpenVisual streams the stored visual media for a question.
func (s *Service) OpenVisual(ctx context.Context, id string) (io.ReadCloser, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.VisualKey == "" {
		return nil, ErrNoVisual
	}
	return s.Store.Open(ctx, q.VisualKey)
}
