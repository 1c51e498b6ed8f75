package questions

import "geowiz-backend/internal/game"

// Question is a single trivia question in the bank.
type Question struct {
	ID                 string
	Mode               game.Mode
	Region             game.Region
	QuestionText       string
	Hint               string
	Answer             string
	AlternativeAnswers []string
	FunFact            string
	Difficulty         int
	VisualType         string
	VisualKey          string
}
