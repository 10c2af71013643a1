// Package setup lets the pupil pick the photo of the page to read.
package setup

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/screens/loading"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
	"github.com/abhisek/lectio/internal/upload"
)

// SetupScreen reads an image path, validates the file and starts the
// quiz generation.
type SetupScreen struct {
	orch  *assessment.Orchestrator
	path  components.TextInput
	alert string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen. A pending orchestrator alert, such as a
// failed generation, is shown on arrival.
func New(orch *assessment.Orchestrator) *SetupScreen {
	return &SetupScreen{
		orch:  orch,
		path:  components.NewTextInput("Photo de la page", "~/Images/page.jpg", 0),
		alert: orch.Alert(),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.path.Focus()
}

func (s *SetupScreen) Title() string {
	return "Choisir le texte"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Envoyer la photo"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, s.pick()
	}
	var cmd tea.Cmd
	s.path, cmd = s.path.Update(msg)
	return s, cmd
}

func (s *SetupScreen) pick() tea.Cmd {
	path := upload.ExpandPath(s.path.Value())
	if path == "" {
		return nil
	}

	picked, err := upload.Load(path)
	if err != nil {
		if errors.Is(err, upload.ErrNotImage) {
			s.orch.RejectUpload(err)
			s.alert = s.orch.Alert()
		} else {
			s.alert = s.orch.Messages().Alerts.UnreadableFile
		}
		return nil
	}

	if err := s.orch.StartUpload(); err != nil {
		return nil
	}
	s.alert = ""
	next := loading.New(s.orch, picked)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	name := s.orch.User().FirstName
	b.WriteString(theme.Title.Width(width).Render("Bonjour " + name + " !"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Prends en photo la page de ton livre, puis indique le fichier ici."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(min(width-8, 70)).Render(s.path.View())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("PNG, JPEG, WEBP ou GIF.")))
	b.WriteString("\n\n")

	if s.alert != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Alert.Render(s.alert)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
