package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/lectio/internal/gateway"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/upload"
)

// stub answers the three gateway operations: a request with an image is
// the quiz generation, a JSON-mode request is an evaluation and anything
// else is the closing message.
type stub struct {
	mu       sync.Mutex
	story    *story.StoryData
	storyErr error
	evaluate func(question, answer string, call int) map[string]any
	feedback string

	storyCalls    int
	evalCalls     map[string]int
	feedbackCalls int
}

func newStub() *stub {
	return &stub{
		story:     story.Sample(),
		feedback:  "Bravo Amine, tu as très bien lu !",
		evalCalls: make(map[string]int),
		evaluate: func(string, string, int) map[string]any {
			return map[string]any{"isCorrect": true, "score": 2, "feedback": "Très bien !"}
		},
	}
}

const (
	questionMarker = "Question ("
	answerMarker   = "Réponse de l'élève : "
)

func lineAfter(text, marker string) string {
	i := strings.Index(text, marker)
	if i < 0 {
		return ""
	}
	rest := text[i+len(marker):]
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func (s *stub) handle(req llm.Request) llm.MockResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := req.Messages[0]
	switch {
	case len(msg.Images) > 0:
		s.storyCalls++
		if s.storyErr != nil {
			return llm.MockResponse{Err: s.storyErr}
		}
		raw, _ := json.Marshal(s.story)
		return llm.MockResponse{Content: raw}

	case req.JSONMode:
		// "Question (TYPE) : Question 3 ?"
		q := lineAfter(msg.Content, questionMarker)
		if _, text, ok := strings.Cut(q, ") : "); ok {
			q = text
		}
		answer := lineAfter(msg.Content, answerMarker)
		s.evalCalls[q]++
		raw, _ := json.Marshal(s.evaluate(q, answer, s.evalCalls[q]))
		return llm.MockResponse{Content: raw}

	default:
		s.feedbackCalls++
		return llm.MockResponse{Content: json.RawMessage(s.feedback)}
	}
}

func (s *stub) totalEvalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.evalCalls {
		n += c
	}
	return n
}

func newOrchestrator(t *testing.T, s *stub, repo store.EventRepo) *Orchestrator {
	t.Helper()
	gw := gateway.New(llm.NewMockHandler(s.handle), gateway.DefaultConfig(), nil, nil)
	return New(gw, nil, repo, nil)
}

func pngFile(t *testing.T) upload.Picked {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))
	p, err := upload.Load(path)
	require.NoError(t, err)
	return p
}

// toQuiz logs in as Amine Benali, uploads a page and finishes reading.
func toQuiz(t *testing.T, o *Orchestrator) {
	t.Helper()
	require.NoError(t, o.Login("Amine", "Benali"))
	require.NoError(t, o.Upload(context.Background(), pngFile(t)))
	require.NoError(t, o.FinishReading())
	require.Equal(t, Quiz, o.State())
}

func answerAll(t *testing.T, o *Orchestrator, answer string) {
	t.Helper()
	for _, q := range o.Story().Questions {
		st, _ := o.Engine().State(q.ID)
		if st.Status.Terminal() {
			continue
		}
		require.NoError(t, o.SetAnswer(q.ID, answer))
	}
}

func TestScenario_HappyPath(t *testing.T) {
	s := newStub()
	o := newOrchestrator(t, s, nil)
	toQuiz(t, o)

	assert.True(t, strings.HasPrefix(o.Story().ImageURL, "file://"))
	assert.Equal(t, 1, s.storyCalls)

	answerAll(t, o, "Le renard a servi la soupe dans une assiette.")
	rep, err := o.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Correct)
	assert.Equal(t, 10, s.totalEvalCalls())

	require.NoError(t, o.Complete(context.Background()))
	assert.Equal(t, Results, o.State())
	assert.Equal(t, 10, o.Score().Total)

	fb, ready := o.FinalFeedback()
	assert.True(t, ready)
	assert.Equal(t, "Bravo Amine, tu as très bien lu !", fb)

	r, err := o.Report()
	require.NoError(t, err)
	assert.Equal(t, "Rapport_Benali_Amine.csv", report.FileName(r, report.FormatCSV))

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, r))
	assert.Equal(t, "\uFEFF"+
		"Student_First_Name,Student_Last_Name,Score littéral,Score inférentiel,Score évaluatif,Score total\n"+
		"Amine,Benali,4,4,2,10\n", buf.String())
}

func TestScenario_RetrySucceeds(t *testing.T) {
	s := newStub()
	s.evaluate = func(q, answer string, _ int) map[string]any {
		if q == "Question 3 ?" && answer == "Le renard était gentil." {
			return map[string]any{"isCorrect": false, "score": 0, "feedback": "Relis le début du texte."}
		}
		return map[string]any{"isCorrect": true, "score": 2, "feedback": "Oui !"}
	}
	o := newOrchestrator(t, s, nil)
	toQuiz(t, o)

	answerAll(t, o, "Une réponse juste.")
	require.NoError(t, o.SetAnswer(3, "Le renard était gentil."))
	_, err := o.Submit(context.Background())
	require.NoError(t, err)

	st, _ := o.Engine().State(3)
	assert.Equal(t, quiz.IncorrectRetry, st.Status)
	assert.Equal(t, 1, st.Attempt)
	assert.False(t, o.Engine().IsAllComplete())

	require.NoError(t, o.SetAnswer(3, "Le renard voulait se moquer de la cigogne."))
	rep, err := o.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Submitted)

	st, _ = o.Engine().State(3)
	assert.Equal(t, quiz.Correct, st.Status)
	assert.Equal(t, 1, st.Attempt)

	require.NoError(t, o.Complete(context.Background()))
	sc := o.Score()
	assert.Equal(t, 4, sc.Literal)
	assert.Equal(t, 4, sc.Inferential)
	assert.Equal(t, 2, sc.Evaluative)
	assert.Equal(t, 10, sc.Total)
}

func TestScenario_FinalFailRevealsAnswer(t *testing.T) {
	const reveal = "Parce qu'il cherche la gloire."
	s := newStub()
	s.evaluate = func(q, _ string, call int) map[string]any {
		if q != "Question 7 ?" {
			return map[string]any{"isCorrect": true, "score": 2, "feedback": "Oui !"}
		}
		if call == 1 {
			return map[string]any{"isCorrect": false, "score": 0, "feedback": "Pense à ce que veut le héros."}
		}
		return map[string]any{"isCorrect": false, "score": 0, "feedback": "Ce n'est pas tout à fait ça.", "correctAnswer": reveal}
	}
	o := newOrchestrator(t, s, nil)
	toQuiz(t, o)

	answerAll(t, o, "Il a faim.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, o.SetAnswer(7, "Il veut de l'argent."))
	_, err = o.Submit(context.Background())
	require.NoError(t, err)

	st, _ := o.Engine().State(7)
	assert.Equal(t, quiz.FailedFinal, st.Status)
	assert.Equal(t, 2, st.Attempt)
	assert.Equal(t, "Il veut de l'argent.", st.Answer)

	require.NoError(t, o.Complete(context.Background()))
	res := o.Results()
	require.Len(t, res, 10)
	assert.Equal(t, 7, res[6].Question.ID)
	assert.Equal(t, reveal, res[6].CorrectAnswer)
	assert.False(t, res[6].IsCorrect)
	assert.LessOrEqual(t, o.Score().Evaluative, 1)
}

func TestScenario_EmptyFirstAttemptShortCircuits(t *testing.T) {
	s := newStub()
	o := newOrchestrator(t, s, nil)
	toQuiz(t, o)

	rep, err := o.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Retry)
	assert.Zero(t, s.totalEvalCalls())

	for _, q := range o.Story().Questions {
		st, _ := o.Engine().State(q.ID)
		assert.Equal(t, quiz.IncorrectRetry, st.Status, "question %d", q.ID)
		require.NotNil(t, st.Feedback)
		assert.True(t, st.Feedback.IsIncomplete)
		assert.Equal(t, messages.French().IncompleteFeedback, st.Feedback.Feedback)
	}
}

func TestScenario_EmptyRetryForcesGatewayCall(t *testing.T) {
	s := newStub()
	s.evaluate = func(q, _ string, _ int) map[string]any {
		// A model that wrongly accepts the blank answer is overruled.
		return map[string]any{"isCorrect": true, "score": 2, "correctAnswer": "Réponse attendue pour " + q}
	}
	o := newOrchestrator(t, s, nil)
	toQuiz(t, o)

	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	answerAll(t, o, "   ")
	_, err = o.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, s.totalEvalCalls())
	for q, n := range s.evalCalls {
		assert.Equal(t, 1, n, q)
	}

	require.NoError(t, o.Complete(context.Background()))
	for _, r := range o.Results() {
		assert.False(t, r.IsCorrect)
		assert.Equal(t, "Réponse attendue pour "+r.Question.Text, r.CorrectAnswer)
		assert.NotEmpty(t, r.Feedback)
	}
	assert.Zero(t, o.Score().Total)

	r, err := o.Report()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, r))
	assert.True(t, strings.HasSuffix(buf.String(), "\nAmine,Benali,0,0,0,0\n"))
}

func TestScenario_AssessmentFailureRewinds(t *testing.T) {
	s := newStub()
	s.storyErr = &llm.ErrProviderUnavailable{Err: errors.New("503")}
	o := newOrchestrator(t, s, nil)

	require.NoError(t, o.Login("Amine", "Benali"))
	err := o.Upload(context.Background(), pngFile(t))

	var failure *gateway.LLMFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, Setup, o.State())
	assert.Nil(t, o.Story())
	assert.Equal(t, UserInfo{FirstName: "Amine", LastName: "Benali"}, o.User())
	assert.Equal(t, messages.French().Alerts.AssessmentFailed, o.Alert())

	// The pupil can try again with another picture.
	s.storyErr = nil
	require.NoError(t, o.Upload(context.Background(), pngFile(t)))
	assert.Equal(t, Reading, o.State())
	assert.Empty(t, o.Alert())
}

func TestLogin_RejectsBlankNames(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)

	assert.ErrorIs(t, o.Login("  ", "Benali"), ErrInvalidName)
	assert.ErrorIs(t, o.Login("Amine", ""), ErrInvalidName)
	assert.Equal(t, Login, o.State())
	assert.NotEmpty(t, o.Alert())

	require.NoError(t, o.Login(" Amine ", " Benali "))
	assert.Equal(t, UserInfo{FirstName: "Amine", LastName: "Benali"}, o.User())
	assert.NotEmpty(t, o.SessionID())
	assert.Empty(t, o.Alert())
}

func TestTransitions_RejectOutOfOrderEvents(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)

	var terr *TransitionError
	require.ErrorAs(t, o.StartUpload(), &terr)
	assert.Equal(t, Login, terr.From)
	assert.Equal(t, EventUpload, terr.Event)

	require.ErrorAs(t, o.FinishReading(), &terr)
	require.ErrorAs(t, o.Quit(), &terr)
	_, err := o.Report()
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, Login, o.State())
}

func TestFinishQuiz_RequiresCompletion(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)

	assert.ErrorIs(t, o.FinishQuiz(context.Background()), quiz.ErrNotComplete)
	assert.Equal(t, Quiz, o.State())
}

func TestAsyncUploadAndFeedback(t *testing.T) {
	s := newStub()
	o := newOrchestrator(t, s, nil)
	require.NoError(t, o.Login("Amine", "Benali"))

	require.NoError(t, o.StartUpload())
	assert.Equal(t, LoadingStory, o.State())
	st, err := o.LoadStory(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}})
	require.NoError(t, o.CompleteUpload(st, "file:///tmp/page.png", err))
	assert.Equal(t, "file:///tmp/page.png", o.Story().ImageURL)
	require.NoError(t, o.FinishReading())

	answerAll(t, o, "Une réponse.")
	b, err := o.BeginSubmit()
	require.NoError(t, err)
	_, err = o.BeginSubmit()
	assert.ErrorIs(t, err, quiz.ErrSubmitInFlight)

	outcomes, evalErr := o.Evaluate(context.Background(), b)
	_, err = o.ApplySubmit(context.Background(), b, outcomes, evalErr)
	require.NoError(t, err)

	require.NoError(t, o.FinishQuiz(context.Background()))
	_, ready := o.FinalFeedback()
	assert.False(t, ready)
	assert.Zero(t, s.feedbackCalls)

	require.NoError(t, o.SetFinalFeedback(o.RequestFinalFeedback(context.Background())))
	fb, ready := o.FinalFeedback()
	assert.True(t, ready)
	assert.NotEmpty(t, fb)
}

func TestSubmit_FailedBatchRaisesOneAlert(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := o.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, messages.French().Alerts.SubmitFailed, o.Alert())

	p := o.Engine().Progress()
	assert.Zero(t, p.Completed)
	assert.False(t, o.Engine().Submitting())
}

func TestQuit_ClearsSession(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, o.Complete(context.Background()))

	require.NoError(t, o.Quit())
	assert.Equal(t, Login, o.State())
	assert.Equal(t, UserInfo{}, o.User())
	assert.Nil(t, o.Story())
	assert.Nil(t, o.Results())
	assert.Nil(t, o.Engine())
	assert.Empty(t, o.SessionID())
}

func TestExportReport(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, o.Complete(context.Background()))

	dir := t.TempDir()
	path, err := o.ExportReport(dir, report.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Rapport_Benali_Amine.xlsx"), path)
	assert.Equal(t, Results, o.State())
}

func TestRecordExport_SetsAndClearsAlert(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, o.Complete(context.Background()))

	saveErr := errors.New("disk full")
	err = o.RecordExport("", report.FormatCSV, saveErr)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, messages.French().Alerts.ExportFailed, o.Alert())

	require.NoError(t, o.RecordExport("/tmp/r.csv", report.FormatCSV, nil))
	assert.Empty(t, o.Alert())
}

func TestFinishQuiz_ReleasesEngine(t *testing.T) {
	o := newOrchestrator(t, newStub(), nil)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)

	require.NoError(t, o.FinishQuiz(context.Background()))
	assert.Nil(t, o.Engine())
	assert.Len(t, o.Results(), 10)
}

func TestHistory_RecordsAnswersAndAssessment(t *testing.T) {
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	repo := st.EventRepo()

	s := newStub()
	s.evaluate = func(q, _ string, call int) map[string]any {
		return map[string]any{"isCorrect": q != "Question 1 ?" || call > 1, "score": 2}
	}
	o := newOrchestrator(t, s, repo)
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err = o.Submit(context.Background())
	require.NoError(t, err)
	_, err = o.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, o.Complete(context.Background()))

	ctx := context.Background()
	answers, err := repo.AnswersForSession(ctx, o.SessionID())
	require.NoError(t, err)
	require.Len(t, answers, 11)
	assert.Equal(t, 1, answers[0].QuestionID)
	assert.Equal(t, string(quiz.IncorrectRetry), answers[0].Status)
	assert.Equal(t, "Une réponse.", answers[0].StudentAnswer)
	last := answers[len(answers)-1]
	assert.Equal(t, 1, last.QuestionID)
	assert.Equal(t, string(quiz.Correct), last.Status)

	records, err := repo.QueryAssessments(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, o.SessionID(), records[0].SessionID)
	assert.Equal(t, "Le renard et la cigogne", records[0].StoryTitle)
	assert.Equal(t, 10, records[0].ScoreTotal)
}

func TestSetAnswer_LogsRejectedEdit(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	gw := gateway.New(llm.NewMockHandler(newStub().handle), gateway.DefaultConfig(), nil, nil)
	o := New(gw, nil, nil, zap.New(core))
	toQuiz(t, o)
	answerAll(t, o, "Une réponse.")
	_, err := o.Submit(context.Background())
	require.NoError(t, err)

	err = o.SetAnswer(1, "Une autre réponse.")
	assert.ErrorIs(t, err, quiz.ErrTerminal)

	entries := logs.FilterMessage("answer edit rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["question_id"])
}
