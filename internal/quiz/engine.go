package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/story"
)

// Engine owns the answer state of every question in one story. Its
// methods are meant to be called from a single event loop; only Evaluate
// may run elsewhere, since it reads nothing but the batch and immutable
// fields.
type Engine struct {
	story  *story.StoryData
	eval   Evaluator
	msgs   *messages.Catalog
	logger *zap.Logger

	states     map[int]*AnswerState
	submitting bool
}

// NewEngine creates an engine with every question idle.
func NewEngine(s *story.StoryData, eval Evaluator, msgs *messages.Catalog, logger *zap.Logger) *Engine {
	if msgs == nil {
		msgs = messages.French()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	states := make(map[int]*AnswerState, len(s.Questions))
	for _, q := range s.Questions {
		states[q.ID] = &AnswerState{Status: Idle}
	}
	return &Engine{story: s, eval: eval, msgs: msgs, logger: logger, states: states}
}

// Story returns the story the quiz is about.
func (e *Engine) Story() *story.StoryData { return e.story }

// State returns a copy of the state of question id.
func (e *Engine) State(id int) (AnswerState, bool) {
	st, ok := e.states[id]
	if !ok {
		return AnswerState{}, false
	}
	cp := *st
	if st.Feedback != nil {
		fb := *st.Feedback
		cp.Feedback = &fb
	}
	return cp, true
}

// SetAnswer records the pupil's text for a non-terminal question. Edits
// are allowed while a submission is in flight; they are graded on the
// next one.
func (e *Engine) SetAnswer(id int, answer string) error {
	st, ok := e.states[id]
	if !ok {
		return fmt.Errorf("question %d: %w", id, ErrUnknownQuestion)
	}
	if st.Status.Terminal() {
		return fmt.Errorf("question %d: %w", id, ErrTerminal)
	}
	st.Answer = answer
	return nil
}

// Submitting reports whether a batch is in flight.
func (e *Engine) Submitting() bool { return e.submitting }

// Batch is the snapshot of non-terminal questions taken when the pupil
// submits.
type Batch struct {
	ID    string
	items []batchItem
	start time.Time
}

type batchItem struct {
	question story.Question
	answer   string
	attempt  int
}

// Len returns the number of questions in the batch.
func (b *Batch) Len() int { return len(b.items) }

// QuestionIDs returns the ids in the batch, in question order.
func (b *Batch) QuestionIDs() []int {
	ids := make([]int, len(b.items))
	for i, it := range b.items {
		ids[i] = it.question.ID
	}
	return ids
}

// Answer returns the text snapshotted for question id.
func (b *Batch) Answer(id int) string {
	for _, it := range b.items {
		if it.question.ID == id {
			return it.answer
		}
	}
	return ""
}

// Outcome is the evaluation of one batch item.
type Outcome struct {
	QuestionID int
	Result     story.EvaluationResult
}

// Report summarizes an applied batch.
type Report struct {
	BatchID   string
	Submitted int
	Correct   int
	Retry     int
	Failed    int
	Duration  time.Duration
}

// BeginSubmit snapshots every non-terminal question and takes the
// submission lock. It returns a nil batch, without locking, when nothing
// is left to submit.
func (e *Engine) BeginSubmit() (*Batch, error) {
	if e.submitting {
		return nil, ErrSubmitInFlight
	}

	var items []batchItem
	for _, q := range e.story.Questions {
		st := e.states[q.ID]
		if st.Status.Terminal() {
			continue
		}
		items = append(items, batchItem{question: q, answer: st.Answer, attempt: st.Attempt})
	}
	if len(items) == 0 {
		return nil, nil
	}

	e.submitting = true
	return &Batch{ID: uuid.NewString(), items: items, start: time.Now()}, nil
}

// Evaluate grades every item of b concurrently and waits for all of them.
// A first-attempt blank answer is marked incomplete locally; a blank
// second attempt is still sent so the pupil gets the expected answer.
func (e *Engine) Evaluate(ctx context.Context, b *Batch) ([]Outcome, error) {
	outcomes := make([]Outcome, len(b.items))
	g, gctx := errgroup.WithContext(ctx)

	for i, it := range b.items {
		blank := strings.TrimSpace(it.answer) == ""
		if blank && it.attempt == 0 {
			outcomes[i] = Outcome{QuestionID: it.question.ID, Result: story.EvaluationResult{
				IsCorrect:    false,
				IsIncomplete: true,
				Feedback:     e.msgs.IncompleteFeedback,
			}}
			continue
		}

		g.Go(func() error {
			res, err := e.eval.EvaluateAnswer(gctx, it.question, it.answer, e.story)
			if err != nil {
				return fmt.Errorf("evaluate question %d: %w", it.question.ID, err)
			}
			if blank {
				res.IsCorrect = false
				res.IsIncomplete = true
			}
			outcomes[i] = Outcome{QuestionID: it.question.ID, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Apply writes the outcomes of b and releases the submission lock. When
// evalErr is set nothing changes and the error is returned.
func (e *Engine) Apply(b *Batch, outcomes []Outcome, evalErr error) (Report, error) {
	e.submitting = false
	report := Report{BatchID: b.ID, Submitted: b.Len(), Duration: time.Since(b.start)}

	if evalErr != nil {
		e.logger.Warn("submission batch aborted",
			zap.String("batch_id", b.ID),
			zap.Int("size", b.Len()),
			zap.Error(evalErr),
		)
		return report, evalErr
	}

	answers := make(map[int]string, len(b.items))
	for _, it := range b.items {
		answers[it.question.ID] = it.answer
	}

	for _, o := range outcomes {
		st, ok := e.states[o.QuestionID]
		if !ok || st.Status.Terminal() {
			continue
		}
		res := o.Result
		st.Feedback = &res

		if res.IsCorrect {
			st.Status = Correct
			st.Answer = answers[o.QuestionID]
			report.Correct++
			continue
		}

		st.Attempt++
		if st.Attempt >= MaxAttempts {
			st.Attempt = MaxAttempts
			st.Status = FailedFinal
			st.Answer = answers[o.QuestionID]
			report.Failed++
			continue
		}
		st.Status = IncorrectRetry
		report.Retry++
	}

	e.logger.Info("submission batch applied",
		zap.String("batch_id", b.ID),
		zap.Int("size", report.Submitted),
		zap.Int("correct", report.Correct),
		zap.Int("retry", report.Retry),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// Submit runs a whole batch synchronously. With nothing to submit it is a
// no-op returning an empty report.
func (e *Engine) Submit(ctx context.Context) (Report, error) {
	b, err := e.BeginSubmit()
	if err != nil || b == nil {
		return Report{}, err
	}
	outcomes, evalErr := e.Evaluate(ctx, b)
	return e.Apply(b, outcomes, evalErr)
}

// IsAllComplete reports whether every question is terminal.
func (e *Engine) IsAllComplete() bool {
	for _, st := range e.states {
		if !st.Status.Terminal() {
			return false
		}
	}
	return true
}

// Progress returns counts over all questions.
func (e *Engine) Progress() Progress {
	p := Progress{Total: len(e.story.Questions)}
	for _, st := range e.states {
		switch st.Status {
		case Correct:
			p.Completed++
			p.Correct++
		case FailedFinal:
			p.Completed++
		case IncorrectRetry:
			p.Retrying++
		}
	}
	return p
}

// Results compiles one Result per question in story order. It fails with
// ErrNotComplete until every question is terminal.
func (e *Engine) Results() ([]Result, error) {
	if !e.IsAllComplete() {
		return nil, ErrNotComplete
	}

	results := make([]Result, 0, len(e.story.Questions))
	for _, q := range e.story.Questions {
		st := e.states[q.ID]
		r := Result{
			Question:   q,
			UserAnswer: st.Answer,
			IsCorrect:  st.Status == Correct,
			Attempt:    st.Attempt,
		}
		if st.Feedback != nil {
			r.Feedback = st.Feedback.Feedback
			r.CorrectAnswer = st.Feedback.CorrectAnswer
			r.Score = st.Feedback.Score
		}
		results = append(results, r)
	}
	return results, nil
}
