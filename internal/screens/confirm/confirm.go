// Package confirm asks before leaving the results.
package confirm

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// ConfirmScreen ends the session on "o"/"y" and goes back on "n".
type ConfirmScreen struct {
	orch *assessment.Orchestrator
}

var _ screen.Screen = (*ConfirmScreen)(nil)
var _ screen.KeyHintProvider = (*ConfirmScreen)(nil)

// New creates the quit confirmation for orch.
func New(orch *assessment.Orchestrator) *ConfirmScreen {
	return &ConfirmScreen{orch: orch}
}

func (s *ConfirmScreen) Init() tea.Cmd { return nil }

func (s *ConfirmScreen) Title() string { return "Terminer" }

func (s *ConfirmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "O", Description: "Oui, terminer"},
		{Key: "N", Description: "Non, rester"},
	}
}

func (s *ConfirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch strings.ToLower(kmsg.String()) {
	case "o", "y":
		if err := s.orch.Quit(); err != nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, screen.StateChanged
	case "n", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ConfirmScreen) View(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Bold(true).Render("Terminer et revenir à l'accueil ?") + "\n\n" +
			theme.Hint.Render("Pense à télécharger ton rapport avant de partir.") + "\n\n" +
			theme.Selected.Render("[O] Oui") + "    " + theme.Unselected.Render("[N] Non"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
