package login

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "history" }
func (s *stubScreen) Title() string                           { return "Historique" }

func press(s *LoginScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func newTestLogin(history func() screen.Screen) (*LoginScreen, *assessment.Orchestrator) {
	orch := assessment.New(nil, nil, nil, nil)
	s := New(orch, history)
	s.Init()
	return s, orch
}

func TestEnter_BlankNamesShowAlert(t *testing.T) {
	s, orch := newTestLogin(nil)

	if cmd := press(s, tea.KeyEnter); cmd != nil {
		t.Error("expected no command for blank names")
	}
	if s.alert == "" || s.alert != orch.Messages().Alerts.InvalidName {
		t.Errorf("alert = %q, want the invalid name alert", s.alert)
	}
	if orch.State() != assessment.Login {
		t.Errorf("state = %s, want LOGIN", orch.State())
	}
}

func TestEnter_FirstNameOnlyMovesToLastName(t *testing.T) {
	s, orch := newTestLogin(nil)
	s.fields[0].SetValue("Amine")

	press(s, tea.KeyEnter)

	if s.focus != 1 {
		t.Errorf("focus = %d, want 1", s.focus)
	}
	if s.alert != "" {
		t.Errorf("unexpected alert %q", s.alert)
	}
	if orch.State() != assessment.Login {
		t.Errorf("state = %s, want LOGIN", orch.State())
	}
}

func TestEnter_BothNamesLogsIn(t *testing.T) {
	s, orch := newTestLogin(nil)
	s.fields[0].SetValue("  Amine ")
	s.fields[1].SetValue("Benali")

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screen.StateChangedMsg); !ok {
		t.Errorf("expected StateChangedMsg, got %T", cmd())
	}
	if orch.State() != assessment.Setup {
		t.Errorf("state = %s, want SETUP", orch.State())
	}
	if got := orch.User().FullName(); got != "Amine Benali" {
		t.Errorf("user = %q, want %q", got, "Amine Benali")
	}
}

func TestTab_CyclesFields(t *testing.T) {
	s, _ := newTestLogin(nil)

	press(s, tea.KeyTab)
	if s.focus != 1 || !s.fields[1].Focused() || s.fields[0].Focused() {
		t.Fatalf("after tab focus = %d", s.focus)
	}
	press(s, tea.KeyTab)
	if s.focus != 0 {
		t.Errorf("after second tab focus = %d, want 0", s.focus)
	}
}

func TestF2_PushesHistory(t *testing.T) {
	s, _ := newTestLogin(func() screen.Screen { return &stubScreen{} })

	cmd := press(s, tea.KeyF2)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Historique" {
		t.Errorf("pushed %q", msg.Screen.Title())
	}
}

func TestF2_WithoutHistory(t *testing.T) {
	s, _ := newTestLogin(nil)
	if cmd := press(s, tea.KeyF2); cmd != nil {
		t.Error("expected no command without a history screen")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "F2" {
			t.Error("F2 hint shown without a history screen")
		}
	}
}
