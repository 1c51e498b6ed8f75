package sessions

import "time"

// SessionResponse is the outward-facing representation of a session.
type SessionResponse struct {
	SessionID         string     `json:"sessionId"`
	Mode              string     `json:"mode"`
	Region            string     `json:"region"`
	Score             int        `json:"score"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
	CurrentStreak     int        `json:"currentStreak"`
	MaxStreak         int        `json:"maxStreak"`
	IsCompleted       bool       `json:"isCompleted"`
	StartedAt         time.Time  `json:"startedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// ToResponse converts a session to its API shape.
func ToResponse(s GameSession) SessionResponse {
	return SessionResponse{
		SessionID:         s.ID,
		Mode:              string(s.Mode),
		Region:            string(s.Region),
		Score:             s.Score,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
		CurrentStreak:     s.CurrentStreak,
		MaxStreak:         s.MaxStreak,
		IsCompleted:       s.IsCompleted,
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
	}
}
