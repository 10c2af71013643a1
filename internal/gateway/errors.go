package gateway

import "fmt"

// Operation names used in LLMFailure and logs.
const (
	OpAssessment    = "generate-assessment"
	OpEvaluation    = "evaluate-answer"
	OpFinalFeedback = "final-feedback"
)

// LLMFailure means an operation could not produce a usable result. Only
// GenerateAssessment returns it; the other operations fall back to
// default content.
type LLMFailure struct {
	Op  string
	Err error
}

func (e *LLMFailure) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LLMFailure) Unwrap() error { return e.Err }
