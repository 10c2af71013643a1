// Package reading shows the transcribed text and its glossary.
package reading

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// ReadingScreen lets the pupil read at their own pace.
type ReadingScreen struct {
	orch   *assessment.Orchestrator
	offset int
	done   components.Button
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates the reading screen for the orchestrator's story.
func New(orch *assessment.Orchestrator) *ReadingScreen {
	s := &ReadingScreen{orch: orch}
	s.done = components.NewButton("J'ai fini de lire", "enter", func() tea.Cmd {
		if err := orch.FinishReading(); err != nil {
			return nil
		}
		return screen.StateChanged
	})
	return s
}

func (s *ReadingScreen) Init() tea.Cmd { return nil }

func (s *ReadingScreen) Title() string { return "Lecture" }

func (s *ReadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Défiler"},
		{Key: "Entrée", Description: "J'ai fini de lire"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (s *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.offset--
			return s, nil
		case "down", "j":
			s.offset++
			return s, nil
		case "pgup":
			s.offset -= 10
			return s, nil
		case "pgdown", "space":
			s.offset += 10
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.done, cmd = s.done.Update(msg)
	return s, cmd
}

func (s *ReadingScreen) View(width, height int) string {
	st := s.orch.Story()
	if st == nil {
		return ""
	}
	inner := min(width-8, 90)

	body := renderStory(st, inner)
	button := s.done.Centered(width)
	visible, offset := layout.Window(body, s.offset, max(height-3, 1))
	s.offset = offset

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible) + "\n\n" + button
}

func renderStory(st *story.StoryData, width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(st.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(layout.Wrap(st.Content, width)))
	b.WriteString("\n\n")

	if len(st.Glossary) > 0 {
		b.WriteString(theme.Divider.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Petit lexique"))
		b.WriteString("\n\n")
		for _, g := range st.Glossary {
			entry := theme.GlossaryWord.Render(g.Word) + theme.Body.Render(" : "+g.Definition)
			b.WriteString(layout.Wrap(entry, width))
			b.WriteString("\n")
		}
	}

	if st.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Photo : %s", st.ImageURL)))
	}
	return b.String()
}
