// Package quiz runs the answer lifecycle of one quiz: per-question status,
// a two-attempt budget, and batched parallel evaluation.
package quiz

import (
	"context"
	"errors"

	"github.com/abhisek/lectio/internal/story"
)

// Status is the lifecycle state of one question.
type Status string

const (
	Idle           Status = "IDLE"
	Correct        Status = "CORRECT"
	IncorrectRetry Status = "INCORRECT_RETRY"
	FailedFinal    Status = "FAILED_FINAL"
)

// MaxAttempts is the number of wrong submissions a question absorbs
// before it fails.
const MaxAttempts = 2

// Terminal reports whether no further submission can change s.
func (s Status) Terminal() bool {
	return s == Correct || s == FailedFinal
}

var (
	ErrSubmitInFlight  = errors.New("a submission is already in flight")
	ErrNotComplete     = errors.New("quiz is not complete")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrTerminal        = errors.New("question is already answered")
)

// AnswerState is the engine's record for one question.
type AnswerState struct {
	Answer   string
	Status   Status
	Feedback *story.EvaluationResult
	Attempt  int
}

// Evaluator grades one answer. Implementations should only fail when the
// whole batch has to be abandoned, such as on context cancellation.
type Evaluator interface {
	EvaluateAnswer(ctx context.Context, q story.Question, answer string, s *story.StoryData) (story.EvaluationResult, error)
}

// Result is the final record of one question, emitted once every
// question is terminal.
type Result struct {
	Question      story.Question
	UserAnswer    string
	IsCorrect     bool
	Score         int
	Attempt       int
	Feedback      string
	CorrectAnswer string
}

// Progress summarizes where the quiz stands.
type Progress struct {
	Total     int
	Completed int
	Correct   int
	Retrying  int
}
