package confirm

import (
	"context"
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

// atResults plays a whole session with every answer correct.
func atResults(t *testing.T) *assessment.Orchestrator {
	t.Helper()
	ctx := context.Background()
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	if err := orch.Login("Amine", "Benali"); err != nil {
		t.Fatal(err)
	}
	if err := orch.Upload(ctx, upload.Picked{}); err != nil {
		t.Fatal(err)
	}
	if err := orch.FinishReading(); err != nil {
		t.Fatal(err)
	}
	for _, q := range orch.Story().Questions {
		if err := orch.SetAnswer(q.ID, "réponse"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := orch.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	if err := orch.Complete(ctx); err != nil {
		t.Fatal(err)
	}
	return orch
}

func key(s *ConfirmScreen, text string) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: rune(text[0]), Text: text})
	return cmd
}

func TestYes_QuitsSession(t *testing.T) {
	orch := atResults(t)
	s := New(orch)

	cmd := key(s, "o")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screen.StateChangedMsg); !ok {
		t.Errorf("expected StateChangedMsg, got %T", cmd())
	}
	if orch.State() != assessment.Login {
		t.Errorf("state = %s, want LOGIN", orch.State())
	}
	if orch.User().FirstName != "" {
		t.Error("expected the pupil to be cleared")
	}
}

func TestNo_PopsAndKeepsResults(t *testing.T) {
	orch := atResults(t)
	s := New(orch)

	cmd := key(s, "n")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if orch.State() != assessment.Results {
		t.Errorf("state = %s, want RESULTS", orch.State())
	}
}

func TestYes_OutsideResultsPops(t *testing.T) {
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	s := New(orch)

	cmd := key(s, "y")
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if orch.State() != assessment.Login {
		t.Errorf("state = %s, want LOGIN", orch.State())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New(atResults(t))
	if cmd := key(s, "x"); cmd != nil {
		t.Error("expected no command")
	}
}
