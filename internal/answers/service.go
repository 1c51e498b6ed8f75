package answers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"geowiz-backend/internal/questions"
	"geowiz-backend/internal/sessions"
	"geowiz-backend/internal/shared/metrics"
)

// Service contains business logic for answer submission.
type Service struct {
	Repo      AnswersRepo
	Sessions  *sessions.Service
	Questions *questions.Service
}

// SubmitRequest carries one answer submission.
type SubmitRequest struct {
	SessionID  string
	QuestionID string
	UserAnswer string
	TimeSpent  *int
}

// SubmitResult is the outcome of grading one answer. The question is
// returned in full so the caller can reveal the accepted answer and fun
// fact.
type SubmitResult struct {
	Answer      Answer
	Question    questions.Question
	Session     sessions.GameSession
	ScoreEarned int
}

// Submit grades an answer against the question bank and applies it to
// the owning session's counters.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitRequest) (SubmitResult, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.QuestionID) == "" {
		return SubmitResult{}, ErrInvalidInput
	}

	session, err := s.Sessions.Get(ctx, userID, req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return SubmitResult{}, ErrSessionNotFound
		}
		return SubmitResult{}, err
	}
	if session.IsCompleted {
		return SubmitResult{}, ErrSessionCompleted
	}

	question, err := s.Questions.Get(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, questions.ErrNotFound) {
			return SubmitResult{}, ErrQuestionNotFound
		}
		return SubmitResult{}, err
	}

	correct := questions.CheckAnswer(question, req.UserAnswer)

	answer := Answer{
		ID:         uuid.NewString(),
		SessionID:  session.ID,
		QuestionID: question.ID,
		UserAnswer: strings.TrimSpace(req.UserAnswer),
		IsCorrect:  correct,
		TimeSpent:  req.TimeSpent,
		AnsweredAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, answer); err != nil {
		return SubmitResult{}, err
	}

	updated, earned, err := s.Sessions.RecordAnswer(ctx, userID, session.ID, correct)
	if err != nil {
		if errors.Is(err, sessions.ErrCompleted) {
			return SubmitResult{}, ErrSessionCompleted
		}
		return SubmitResult{}, err
	}

	metrics.IncAnswerSubmitted(correct)

	return SubmitResult{
		Answer:      answer,
		Question:    question,
		Session:     updated,
		ScoreEarned: earned,
	}, nil
}
