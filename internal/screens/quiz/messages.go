package quiz

import (
	qz "github.com/abhisek/lectio/internal/quiz"
)

// batchEvaluatedMsg is sent when every answer of a batch has been graded.
type batchEvaluatedMsg struct {
	Batch    *qz.Batch
	Outcomes []qz.Outcome
	Err      error
}
