package results

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/score"
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

func newTestResults(t *testing.T) (*ResultsScreen, *assessment.Orchestrator, string) {
	t.Helper()
	ctx := context.Background()
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	if err := orch.Login("Amine", "Benali"); err != nil {
		t.Fatal(err)
	}
	if err := orch.Upload(ctx, upload.Picked{URL: "file:///page.png"}); err != nil {
		t.Fatal(err)
	}
	if err := orch.FinishReading(); err != nil {
		t.Fatal(err)
	}
	for _, q := range orch.Story().Questions {
		if err := orch.SetAnswer(q.ID, "le renard"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := orch.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	if err := orch.Complete(ctx); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	return New(orch, dir), orch, dir
}

func TestExport_SavesReport(t *testing.T) {
	s, _, dir := newTestResults(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd == nil {
		t.Fatal("expected an export command")
	}
	raw := cmd()
	msg, ok := raw.(exportedMsg)
	if !ok {
		t.Fatalf("expected exportedMsg, got %T", raw)
	}
	s.Update(msg)

	want := filepath.Join(dir, "Rapport_Benali_Amine.csv")
	if msg.Path != want {
		t.Errorf("path = %q, want %q", msg.Path, want)
	}
	if len(s.saved) != 1 || s.saved[0] != want {
		t.Errorf("saved = %v, want [%s]", s.saved, want)
	}
	if !strings.Contains(s.View(100, 60), "Rapport enregistré") {
		t.Error("view is missing the saved report")
	}
}

func TestExport_UsesSnapshotTakenOnKeypress(t *testing.T) {
	s, orch, dir := newTestResults(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected an export command")
	}
	if err := orch.Quit(); err != nil {
		t.Fatal(err)
	}

	msg := cmd().(exportedMsg)
	if msg.Err != nil {
		t.Fatal(msg.Err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Rapport_Benali_Amine.xlsx")); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestExport_FailureShowsAlert(t *testing.T) {
	s, orch, _ := newTestResults(t)

	s.Update(exportedMsg{Format: report.FormatCSV, Err: errors.New("disk full")})

	want := messages.French().Alerts.ExportFailed
	if s.alert != want {
		t.Errorf("alert = %q, want %q", s.alert, want)
	}
	if orch.Alert() != want {
		t.Errorf("orchestrator alert = %q, want %q", orch.Alert(), want)
	}
	if len(s.saved) != 0 {
		t.Errorf("saved = %v, want none", s.saved)
	}
}
