package quiz

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lectio/internal/story"
)

type evalFunc func(ctx context.Context, q story.Question, answer string) (story.EvaluationResult, error)

type fakeEvaluator struct {
	fn    evalFunc
	calls atomic.Int32
}

func (f *fakeEvaluator) EvaluateAnswer(ctx context.Context, q story.Question, answer string, _ *story.StoryData) (story.EvaluationResult, error) {
	f.calls.Add(1)
	return f.fn(ctx, q, answer)
}

func verdict(correct bool) evalFunc {
	return func(_ context.Context, _ story.Question, _ string) (story.EvaluationResult, error) {
		return story.EvaluationResult{IsCorrect: correct, Feedback: "ok", CorrectAnswer: "La réponse."}, nil
	}
}

func newTestEngine(t *testing.T, fn evalFunc) (*Engine, *fakeEvaluator) {
	t.Helper()
	ev := &fakeEvaluator{fn: fn}
	return NewEngine(story.Sample(), ev, nil, nil), ev
}

func answerAll(t *testing.T, e *Engine, text string) {
	t.Helper()
	for _, q := range e.Story().Questions {
		if st, _ := e.State(q.ID); st.Status.Terminal() {
			continue
		}
		require.NoError(t, e.SetAnswer(q.ID, text))
	}
}

func TestEngine_StartsIdle(t *testing.T) {
	e, _ := newTestEngine(t, verdict(true))
	for _, q := range e.Story().Questions {
		st, ok := e.State(q.ID)
		require.True(t, ok)
		assert.Equal(t, AnswerState{Status: Idle}, st)
	}
	assert.False(t, e.IsAllComplete())
}

func TestEngine_CorrectOnFirstAttempt(t *testing.T) {
	e, ev := newTestEngine(t, verdict(true))
	answerAll(t, e, "Le renard.")

	report, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, report.Submitted)
	assert.Equal(t, 10, report.Correct)
	assert.EqualValues(t, 10, ev.calls.Load())

	require.True(t, e.IsAllComplete())
	for _, q := range e.Story().Questions {
		st, _ := e.State(q.ID)
		assert.Equal(t, Correct, st.Status)
		assert.Equal(t, 0, st.Attempt)
	}
}

func TestEngine_EmptyFirstAttemptShortCircuits(t *testing.T) {
	e, ev := newTestEngine(t, verdict(true))

	_, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ev.calls.Load())

	for _, q := range e.Story().Questions {
		st, _ := e.State(q.ID)
		assert.Equal(t, IncorrectRetry, st.Status)
		assert.Equal(t, 1, st.Attempt)
		require.NotNil(t, st.Feedback)
		assert.True(t, st.Feedback.IsIncomplete)
		assert.Contains(t, st.Feedback.Feedback, "Tu n'as pas répondu")
	}
}

func TestEngine_EmptyRetryStillCallsEvaluator(t *testing.T) {
	// A lenient evaluator must not rescue a blank answer.
	e, ev := newTestEngine(t, verdict(true))

	_, err := e.Submit(context.Background())
	require.NoError(t, err)
	_, err = e.Submit(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 10, ev.calls.Load())
	for _, q := range e.Story().Questions {
		st, _ := e.State(q.ID)
		assert.Equal(t, FailedFinal, st.Status)
		assert.Equal(t, 2, st.Attempt)
		assert.Equal(t, "La réponse.", st.Feedback.CorrectAnswer)
	}
}

func TestEngine_AttemptsNeverExceedTwo(t *testing.T) {
	e, _ := newTestEngine(t, verdict(false))
	answerAll(t, e, "Je ne sais pas.")

	for round := 1; round <= 4; round++ {
		_, err := e.Submit(context.Background())
		require.NoError(t, err)
		for _, q := range e.Story().Questions {
			st, _ := e.State(q.ID)
			assert.LessOrEqual(t, st.Attempt, MaxAttempts)
			assert.Equal(t, min(round, MaxAttempts), st.Attempt)
		}
	}
	assert.True(t, e.IsAllComplete())
}

func TestEngine_TerminalQuestionsAreAbsorbing(t *testing.T) {
	var wrong sync.Map
	wrong.Store(3, true)
	e, ev := newTestEngine(t, func(_ context.Context, q story.Question, _ string) (story.EvaluationResult, error) {
		_, bad := wrong.Load(q.ID)
		return story.EvaluationResult{IsCorrect: !bad, Feedback: "fb"}, nil
	})
	answerAll(t, e, "Une réponse.")

	_, err := e.Submit(context.Background())
	require.NoError(t, err)

	before, _ := e.State(1)
	require.Equal(t, Correct, before.Status)
	assert.ErrorIs(t, e.SetAnswer(1, "changed"), ErrTerminal)

	ev.calls.Store(0)
	report, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Submitted)
	assert.EqualValues(t, 1, ev.calls.Load())

	after, _ := e.State(1)
	assert.Equal(t, before, after)
}

func TestEngine_SubmitLock(t *testing.T) {
	e, _ := newTestEngine(t, verdict(true))
	answerAll(t, e, "x")

	b, err := e.BeginSubmit()
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, e.Submitting())

	_, err = e.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	_, err = e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	outcomes, err := e.Evaluate(context.Background(), b)
	require.NoError(t, err)
	_, err = e.Apply(b, outcomes, nil)
	require.NoError(t, err)
	assert.False(t, e.Submitting())
}

func TestEngine_NothingToSubmitIsNoop(t *testing.T) {
	e, _ := newTestEngine(t, verdict(true))
	answerAll(t, e, "x")
	_, err := e.Submit(context.Background())
	require.NoError(t, err)

	b, err := e.BeginSubmit()
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.False(t, e.Submitting())

	report, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Submitted)
}

func TestEngine_FailedBatchChangesNothing(t *testing.T) {
	boom := errors.New("transport aborted")
	e, _ := newTestEngine(t, func(_ context.Context, q story.Question, _ string) (story.EvaluationResult, error) {
		if q.ID == 5 {
			return story.EvaluationResult{}, boom
		}
		return story.EvaluationResult{IsCorrect: true}, nil
	})
	answerAll(t, e, "x")

	_, err := e.Submit(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, e.Submitting())

	for _, q := range e.Story().Questions {
		st, _ := e.State(q.ID)
		assert.Equal(t, Idle, st.Status)
		assert.Zero(t, st.Attempt)
		assert.Nil(t, st.Feedback)
	}
}

func TestEngine_EvaluatesInParallel(t *testing.T) {
	var started sync.WaitGroup
	started.Add(10)
	release := make(chan struct{})

	e, _ := newTestEngine(t, func(ctx context.Context, _ story.Question, _ string) (story.EvaluationResult, error) {
		started.Done()
		select {
		case <-release:
		case <-ctx.Done():
			return story.EvaluationResult{}, ctx.Err()
		}
		return story.EvaluationResult{IsCorrect: true}, nil
	})
	answerAll(t, e, "x")

	go func() {
		started.Wait()
		close(release)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	report, err := e.Submit(ctx)
	require.NoError(t, err, "all ten evaluations should be in flight at once")
	assert.Equal(t, 10, report.Correct)
}

func TestEngine_EditsDuringFlight(t *testing.T) {
	e, _ := newTestEngine(t, func(_ context.Context, q story.Question, _ string) (story.EvaluationResult, error) {
		return story.EvaluationResult{IsCorrect: q.ID == 1}, nil
	})
	answerAll(t, e, "first")

	b, err := e.BeginSubmit()
	require.NoError(t, err)
	require.NoError(t, e.SetAnswer(1, "edited"))
	require.NoError(t, e.SetAnswer(2, "edited"))

	outcomes, err := e.Evaluate(context.Background(), b)
	require.NoError(t, err)
	_, err = e.Apply(b, outcomes, nil)
	require.NoError(t, err)

	graded, _ := e.State(1)
	assert.Equal(t, "first", graded.Answer, "terminal answer is the one that was graded")
	retry, _ := e.State(2)
	assert.Equal(t, "edited", retry.Answer, "retry keeps the pupil's latest text")
}

func TestEngine_ResultsInStoryOrder(t *testing.T) {
	e, _ := newTestEngine(t, verdict(false))
	_, err := e.Results()
	assert.ErrorIs(t, err, ErrNotComplete)

	answerAll(t, e, "x")
	_, _ = e.Submit(context.Background())
	_, _ = e.Submit(context.Background())

	results, err := e.Results()
	require.NoError(t, err)
	require.Len(t, results, len(e.Story().Questions))
	for i, r := range results {
		assert.Equal(t, e.Story().Questions[i], r.Question)
		assert.False(t, r.IsCorrect)
		assert.Equal(t, "La réponse.", r.CorrectAnswer)
	}
}

func TestEngine_Progress(t *testing.T) {
	e, _ := newTestEngine(t, func(_ context.Context, q story.Question, _ string) (story.EvaluationResult, error) {
		return story.EvaluationResult{IsCorrect: q.ID <= 6}, nil
	})
	answerAll(t, e, "x")
	_, err := e.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Progress{Total: 10, Completed: 6, Correct: 6, Retrying: 4}, e.Progress())
}

func TestEngine_UnknownQuestion(t *testing.T) {
	e, _ := newTestEngine(t, verdict(true))
	assert.ErrorIs(t, e.SetAnswer(99, "x"), ErrUnknownQuestion)
	_, ok := e.State(99)
	assert.False(t, ok)
}
