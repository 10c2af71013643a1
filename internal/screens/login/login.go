// Package login asks for the pupil's first and last name.
package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

const nameLimit = 40

// LoginScreen collects the names and starts a session.
type LoginScreen struct {
	orch    *assessment.Orchestrator
	history func() screen.Screen

	fields [2]components.TextInput
	focus  int
	alert  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen. history builds the history screen; nil
// hides it.
func New(orch *assessment.Orchestrator, history func() screen.Screen) *LoginScreen {
	s := &LoginScreen{
		orch:    orch,
		history: history,
		fields: [2]components.TextInput{
			components.NewTextInput("Prénom", "Amine", nameLimit),
			components.NewTextInput("Nom", "Benali", nameLimit),
		},
	}
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.fields[0].Focus()
}

func (s *LoginScreen) Title() string {
	return "Connexion"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Champ suivant"},
		{Key: "Entrée", Description: "Commencer"},
	}
	if s.history != nil {
		hints = append(hints, layout.KeyHint{Key: "F2", Description: "Historique"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quitter"})
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % len(s.fields))
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + len(s.fields) - 1) % len(s.fields))
		case "f2":
			if s.history != nil {
				h := s.history()
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
			}
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *LoginScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	first, last := s.fields[0].Value(), s.fields[1].Value()
	// Enter on a filled first name moves on instead of failing.
	if s.focus == 0 && strings.TrimSpace(first) != "" && strings.TrimSpace(last) == "" {
		return s.setFocus(1)
	}
	if err := s.orch.Login(first, last); err != nil {
		s.alert = s.orch.Alert()
		return nil
	}
	s.alert = ""
	return screen.StateChanged
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Bienvenue !"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Dis-nous qui tu es avant de commencer la lecture."))
	b.WriteString("\n\n")

	form := s.fields[0].View() + "\n\n" + s.fields[1].View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(min(width-8, 50)).Render(form)))
	b.WriteString("\n\n")

	if s.alert != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Alert.Render(s.alert)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
