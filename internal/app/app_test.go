package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/upload"
)

type fakeGateway struct{}

func (fakeGateway) GenerateAssessment(context.Context, llm.Image) (*story.StoryData, error) {
	return story.Sample(), nil
}

func (fakeGateway) EvaluateAnswer(context.Context, story.Question, string, *story.StoryData) (story.EvaluationResult, error) {
	return story.EvaluationResult{IsCorrect: true, Score: 2, Feedback: "Bravo !"}, nil
}

func (fakeGateway) GenerateFinalFeedback(context.Context, score.UserScore, string) string {
	return "Bien joué !"
}

func newTestApp(t *testing.T) (AppModel, *assessment.Orchestrator) {
	t.Helper()
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	return newAppModel(Options{Orchestrator: orch, ReportDir: t.TempDir(), SkipSplash: true}), orch
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func activeTitle(m AppModel) string {
	return m.router.Active().Title()
}

func TestStartsOnSplash(t *testing.T) {
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	m := newAppModel(Options{Orchestrator: orch})
	if activeTitle(m) == "Connexion" {
		t.Error("expected the splash screen first")
	}
}

func TestStateChanged_FollowsOrchestrator(t *testing.T) {
	m, orch := newTestApp(t)
	ctx := context.Background()

	steps := []struct {
		advance func() error
		want    string
	}{
		{func() error { return nil }, "Connexion"},
		{func() error { return orch.Login("Amine", "Benali") }, "Choisir le texte"},
		{func() error { return orch.Upload(ctx, upload.Picked{}) }, "Lecture"},
		{orch.FinishReading, "Questions"},
		{func() error {
			for _, q := range orch.Story().Questions {
				if err := orch.SetAnswer(q.ID, "réponse"); err != nil {
					return err
				}
			}
			if _, err := orch.Submit(ctx); err != nil {
				return err
			}
			return orch.FinishQuiz(ctx)
		}, "Résultats"},
	}

	for _, step := range steps {
		if err := step.advance(); err != nil {
			t.Fatalf("advancing to %s: %v", step.want, err)
		}
		m = update(t, m, screen.StateChangedMsg{})
		if got := activeTitle(m); got != step.want {
			t.Fatalf("screen = %q, want %q", got, step.want)
		}
		if m.router.Depth() != 1 {
			t.Errorf("depth = %d, want 1 after a state change", m.router.Depth())
		}
	}
}

func TestEsc_PopsPushedScreen(t *testing.T) {
	m, _ := newTestApp(t)
	m.router.Push(m.screenFor(assessment.Login))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestView_ShowsPupilInHeader(t *testing.T) {
	m, orch := newTestApp(t)
	if err := orch.Login("Amine", "Benali"); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, screen.StateChangedMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if !strings.Contains(m.render(), "Amine Benali") {
		t.Error("header is missing the pupil name")
	}
}

func TestView_TooSmall(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(m.render(), "trop petite") {
		t.Error("expected the minimum size message")
	}
}
