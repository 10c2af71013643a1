package components

import (
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/ui/theme"
)

type pressedMsg string

func TestMenuHotkeyRunsItem(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "CSV", Hotkey: "c", Action: func() tea.Cmd { return func() tea.Msg { return pressedMsg("csv") } }},
		{Label: "Quitter", Hotkey: "q", Action: func() tea.Cmd { return func() tea.Msg { return pressedMsg("quit") } }},
	})

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command from hotkey")
	}
	if got := cmd(); got != pressedMsg("quit") {
		t.Errorf("expected quit, got %v", got)
	}
	if m.Selected != 1 {
		t.Errorf("expected hotkey to select item 1, got %d", m.Selected)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off", Disabled: true},
		{Label: "b"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected selection to stay at the last item, got %d", m.Selected)
	}
}

func TestButtonRespondsToBoundKeyOnly(t *testing.T) {
	pressed := 0
	b := NewButton("J'ai fini de lire", "enter", func() tea.Cmd { pressed++; return nil })

	b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b.Active = false
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if pressed != 1 {
		t.Errorf("expected one press, got %d", pressed)
	}
}

func TestProgressBarCount(t *testing.T) {
	p := ProgressBar{Cells: []color.Color{theme.Success, nil, nil}, Done: 1}
	if !strings.Contains(p.View(), "1/3") {
		t.Errorf("expected count in %q", p.View())
	}
}
