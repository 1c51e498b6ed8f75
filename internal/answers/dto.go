package answers

import "geowiz-backend/internal/sessions"

// SubmitResponse is the outward-facing grading result. The accepted
// answer and fun fact are revealed only here, after submission.
type SubmitResponse struct {
	AnswerID      string                   `json:"answerId"`
	IsCorrect     bool                     `json:"isCorrect"`
	CorrectAnswer string                   `json:"correctAnswer"`
	FunFact       string                   `json:"funFact,omitempty"`
	ScoreEarned   int                      `json:"scoreEarned"`
	Session       sessions.SessionResponse `json:"session"`
}

func toResponse(res SubmitResult) SubmitResponse {
	return SubmitResponse{
		AnswerID:      res.Answer.ID,
		IsCorrect:     res.Answer.IsCorrect,
		CorrectAnswer: res.Question.Answer,
		FunFact:       res.Question.FunFact,
		ScoreEarned:   res.ScoreEarned,
		Session:       sessions.ToResponse(res.Session),
	}
}
