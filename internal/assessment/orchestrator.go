package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/upload"
)

// recordTimeout bounds history writes so a slow disk never stalls the UI.
const recordTimeout = 2 * time.Second

// Orchestrator owns the state machine and the quiz engine of the current
// session. Like the engine it is driven from one event loop. The
// LoadStory, Evaluate and RequestFinalFeedback methods only read values
// fixed before they are called and may run on another goroutine, as may
// report.Save of a value returned by Report.
type Orchestrator struct {
	gw     Gateway
	msgs   *messages.Catalog
	repo   store.EventRepo
	logger *zap.Logger

	state     State
	user      UserInfo
	sessionID string
	started   time.Time
	alert     string

	story    *story.StoryData
	engine   *quiz.Engine
	results  []quiz.Result
	score    score.UserScore
	feedback string
	// feedbackReady is false between FinishQuiz and SetFinalFeedback.
	feedbackReady bool
}

// New creates an orchestrator at LOGIN. repo may be nil, which disables
// the local history.
func New(gw Gateway, msgs *messages.Catalog, repo store.EventRepo, logger *zap.Logger) *Orchestrator {
	if msgs == nil {
		msgs = messages.French()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{gw: gw, msgs: msgs, repo: repo, logger: logger, state: Login}
}

func (o *Orchestrator) State() State { return o.state }
func (o *Orchestrator) User() UserInfo { return o.user }
func (o *Orchestrator) SessionID() string { return o.sessionID }
func (o *Orchestrator) Story() *story.StoryData { return o.story }
func (o *Orchestrator) Engine() *quiz.Engine { return o.engine }
func (o *Orchestrator) Score() score.UserScore { return o.score }
func (o *Orchestrator) Results() []quiz.Result { return o.results }
func (o *Orchestrator) Messages() *messages.Catalog { return o.msgs }

// Alert returns the pending pupil-facing notice, if any.
func (o *Orchestrator) Alert() string { return o.alert }

// DismissAlert clears the pending notice.
func (o *Orchestrator) DismissAlert() { o.alert = "" }

// FinalFeedback returns the closing message and whether it has arrived.
func (o *Orchestrator) FinalFeedback() (string, bool) { return o.feedback, o.feedbackReady }

func (o *Orchestrator) require(want State, ev Event) error {
	if o.state != want {
		return &TransitionError{From: o.state, Event: ev}
	}
	return nil
}

func (o *Orchestrator) transition(to State, ev Event) {
	o.logger.Info("state transition",
		zap.String("session_id", o.sessionID),
		zap.String("from", string(o.state)),
		zap.String("to", string(to)),
		zap.String("event", string(ev)),
	)
	o.state = to
}

// Login stores the pupil's names and moves to SETUP. Blank names leave
// the state at LOGIN and return ErrInvalidName.
func (o *Orchestrator) Login(firstName, lastName string) error {
	if err := o.require(Login, EventLogin); err != nil {
		return err
	}
	first, last := strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if first == "" || last == "" {
		o.alert = o.msgs.Alerts.InvalidName
		return ErrInvalidName
	}

	o.user = UserInfo{FirstName: first, LastName: last}
	o.sessionID = uuid.NewString()
	o.started = time.Now()
	o.alert = ""
	o.transition(Setup, EventLogin)
	return nil
}

// RejectUpload raises the not-an-image alert without leaving SETUP.
func (o *Orchestrator) RejectUpload(err error) {
	o.logger.Info("upload rejected", zap.String("session_id", o.sessionID), zap.Error(err))
	o.alert = o.msgs.Alerts.NotAnImage
}

// StartUpload moves from SETUP to LOADING_STORY. The caller then runs
// LoadStory and hands its result to CompleteUpload.
func (o *Orchestrator) StartUpload() error {
	if err := o.require(Setup, EventUpload); err != nil {
		return err
	}
	o.alert = ""
	o.transition(LoadingStory, EventUpload)
	return nil
}

// LoadStory asks the gateway to build the quiz for img.
func (o *Orchestrator) LoadStory(ctx context.Context, img llm.Image) (*story.StoryData, error) {
	return o.gw.GenerateAssessment(ctx, img)
}

// CompleteUpload applies the outcome of LoadStory. On success the story
// is stored with imageURL and the state becomes READING; on failure the
// state rewinds to SETUP with an alert and the user is kept.
func (o *Orchestrator) CompleteUpload(s *story.StoryData, imageURL string, err error) error {
	if terr := o.require(LoadingStory, EventStoryLoaded); terr != nil {
		return terr
	}
	if err == nil && s == nil {
		err = errors.New("no story returned")
	}
	if err != nil {
		o.logger.Warn("assessment failed",
			zap.String("session_id", o.sessionID),
			zap.Error(err),
		)
		o.alert = o.msgs.Alerts.AssessmentFailed
		o.transition(Setup, EventStoryLoaded)
		return err
	}

	s.ImageURL = imageURL
	o.story = s
	o.transition(Reading, EventStoryLoaded)
	return nil
}

// Upload runs StartUpload, LoadStory and CompleteUpload in sequence.
func (o *Orchestrator) Upload(ctx context.Context, p upload.Picked) error {
	if err := o.StartUpload(); err != nil {
		return err
	}
	s, err := o.LoadStory(ctx, p.Image)
	return o.CompleteUpload(s, p.URL, err)
}

// FinishReading moves to QUIZ with a fresh engine.
func (o *Orchestrator) FinishReading() error {
	if err := o.require(Reading, EventFinishReading); err != nil {
		return err
	}
	o.engine = quiz.NewEngine(o.story, o.gw, o.msgs, o.logger)
	o.transition(Quiz, EventFinishReading)
	return nil
}

// SetAnswer records an edit for question id.
func (o *Orchestrator) SetAnswer(id int, answer string) error {
	if err := o.require(Quiz, EventSubmit); err != nil {
		return err
	}
	if err := o.engine.SetAnswer(id, answer); err != nil {
		o.logger.Warn("answer edit rejected",
			zap.String("session_id", o.sessionID),
			zap.Int("question_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// BeginSubmit snapshots the pending answers. A nil batch means there is
// nothing to grade.
func (o *Orchestrator) BeginSubmit() (*quiz.Batch, error) {
	if err := o.require(Quiz, EventSubmit); err != nil {
		return nil, err
	}
	return o.engine.BeginSubmit()
}

// Evaluate grades b. It touches no orchestrator state.
func (o *Orchestrator) Evaluate(ctx context.Context, b *quiz.Batch) ([]quiz.Outcome, error) {
	return o.engine.Evaluate(ctx, b)
}

// ApplySubmit writes the batch outcome into the engine and records the
// graded answers. A failed batch changes nothing and raises one alert.
func (o *Orchestrator) ApplySubmit(ctx context.Context, b *quiz.Batch, outcomes []quiz.Outcome, evalErr error) (quiz.Report, error) {
	rep, err := o.engine.Apply(b, outcomes, evalErr)
	if err != nil {
		o.alert = o.msgs.Alerts.SubmitFailed
		return rep, err
	}
	o.alert = ""
	o.recordAnswers(ctx, b)
	return rep, nil
}

// Submit grades every pending answer synchronously.
func (o *Orchestrator) Submit(ctx context.Context) (quiz.Report, error) {
	b, err := o.BeginSubmit()
	if err != nil || b == nil {
		return quiz.Report{}, err
	}
	outcomes, evalErr := o.Evaluate(ctx, b)
	return o.ApplySubmit(ctx, b, outcomes, evalErr)
}

// FinishQuiz collects the results, aggregates the score and moves to
// RESULTS with the closing message still pending. The engine is released;
// Results is the only record of the quiz afterwards. It fails with
// quiz.ErrNotComplete while any question is open.
func (o *Orchestrator) FinishQuiz(ctx context.Context) error {
	if err := o.require(Quiz, EventFinishQuiz); err != nil {
		return err
	}
	results, err := o.engine.Results()
	if err != nil {
		return err
	}

	o.results = results
	o.score = score.Aggregate(results)
	o.feedback, o.feedbackReady = "", false
	o.recordAssessment(ctx)
	o.engine = nil
	o.transition(Results, EventFinishQuiz)
	return nil
}

// RequestFinalFeedback asks the gateway for the closing message. It only
// reads the score and names fixed by FinishQuiz.
func (o *Orchestrator) RequestFinalFeedback(ctx context.Context) string {
	return o.gw.GenerateFinalFeedback(ctx, o.score, o.user.FirstName)
}

// SetFinalFeedback stores the closing message.
func (o *Orchestrator) SetFinalFeedback(text string) error {
	if err := o.require(Results, EventFinalFeedback); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		text = o.msgs.FinalEncouragement
	}
	o.feedback, o.feedbackReady = text, true
	return nil
}

// Complete runs FinishQuiz and fetches the closing message.
func (o *Orchestrator) Complete(ctx context.Context) error {
	if err := o.FinishQuiz(ctx); err != nil {
		return err
	}
	return o.SetFinalFeedback(o.RequestFinalFeedback(ctx))
}

// Report returns the downloadable summary.
func (o *Orchestrator) Report() (report.Report, error) {
	if err := o.require(Results, EventDownloadReport); err != nil {
		return report.Report{}, err
	}
	return report.Report{
		FirstName: o.user.FirstName,
		LastName:  o.user.LastName,
		Score:     o.score,
		Results:   o.results,
	}, nil
}

// ExportReport saves the report into dir and returns its path. The state
// stays at RESULTS.
func (o *Orchestrator) ExportReport(dir string, f report.Format) (string, error) {
	r, err := o.Report()
	if err != nil {
		return "", err
	}
	path, err := report.Save(dir, r, f)
	if err := o.RecordExport(path, f, err); err != nil {
		return "", err
	}
	return path, nil
}

// RecordExport logs the outcome of a report.Save of Report and updates the
// alert. It returns the wrapped save error, if any.
func (o *Orchestrator) RecordExport(path string, f report.Format, err error) error {
	if err != nil {
		o.logger.Error("report export failed", zap.String("session_id", o.sessionID), zap.Error(err))
		o.alert = o.msgs.Alerts.ExportFailed
		return fmt.Errorf("export report: %w", err)
	}
	o.alert = ""
	o.logger.Info("report exported",
		zap.String("session_id", o.sessionID),
		zap.String("path", path),
		zap.String("format", string(f)),
	)
	return nil
}

// Quit clears the session and returns to LOGIN.
func (o *Orchestrator) Quit() error {
	if err := o.require(Results, EventQuit); err != nil {
		return err
	}
	o.transition(Login, EventQuit)
	o.user = UserInfo{}
	o.sessionID = ""
	o.started = time.Time{}
	o.alert = ""
	o.story = nil
	o.engine = nil
	o.results = nil
	o.score = score.UserScore{}
	o.feedback, o.feedbackReady = "", false
	return nil
}
