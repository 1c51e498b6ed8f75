package answers

import "time"

// Answer records one submitted answer within a session.
type Answer struct {
	ID         string
	SessionID  string
	QuestionID string
	UserAnswer string
	IsCorrect  bool
	TimeSpent  *int // seconds, optional
	AnsweredAt time.Time
}
