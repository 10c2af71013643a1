package story

// EvaluationResult is the verdict on one answer. Score carries partial
// credit for feedback only; aggregation counts IsCorrect.
type EvaluationResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	IsIncomplete  bool   `json:"isIncomplete"`
	Score         int    `json:"score"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}
