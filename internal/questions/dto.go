package questions

// QuestionResponse is the outward-facing representation of a question
// during gameplay. The accepted answers and fun fact are withheld until
// an answer is submitted.
type QuestionResponse struct {
	QuestionID   string `json:"questionId"`
	Mode         string `json:"mode"`
	Region       string `json:"region"`
	QuestionText string `json:"questionText"`
	Hint         string `json:"hint,omitempty"`
	Difficulty   int    `json:"difficulty"`
	VisualType   string `json:"visualType,omitempty"`
	HasVisual    bool   `json:"hasVisual"`
}

func toResponse(q Question) QuestionResponse {
	return QuestionResponse{
		QuestionID:   q.ID,
		Mode:         string(q.Mode),
		Region:       string(q.Region),
		QuestionText: q.QuestionText,
		Hint:         q.Hint,
		Difficulty:   q.Difficulty,
		VisualType:   q.VisualType,
		HasVisual:    q.VisualKey != "",
	}
}
