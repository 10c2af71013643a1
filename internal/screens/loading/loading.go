// Package loading shows progress while the page is turned into a quiz.
package loading

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
	"github.com/abhisek/lectio/internal/upload"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tips rotate under the spinner.
var tips = []string{
	"Je lis le texte de ta photo...",
	"Je choisis les mots difficiles...",
	"Je prépare tes questions...",
}

type spinnerTickMsg time.Time

// storyLoadedMsg carries the outcome of the generation.
type storyLoadedMsg struct {
	Story *story.StoryData
	Err   error
}

// LoadingScreen runs the generation and reports the outcome to the
// orchestrator.
type LoadingScreen struct {
	orch   *assessment.Orchestrator
	picked upload.Picked
	frame  int
	done   bool
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates the loading screen for picked. The orchestrator must be in
// LOADING_STORY.
func New(orch *assessment.Orchestrator, picked upload.Picked) *LoadingScreen {
	return &LoadingScreen{orch: orch, picked: picked}
}

func spin() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg { return spinnerTickMsg(t) })
}

func (s *LoadingScreen) Init() tea.Cmd {
	orch, img := s.orch, s.picked.Image
	return tea.Batch(spin(), func() tea.Msg {
		st, err := orch.LoadStory(context.Background(), img)
		return storyLoadedMsg{Story: st, Err: err}
	})
}

func (s *LoadingScreen) Title() string {
	return "Préparation"
}

func (s *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quitter"}}
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if s.done {
			return s, nil
		}
		s.frame++
		return s, spin()

	case storyLoadedMsg:
		s.done = true
		// The error already sits in the orchestrator as an alert.
		_ = s.orch.CompleteUpload(msg.Story, s.picked.URL, msg.Err)
		return s, screen.StateChanged
	}
	return s, nil
}

func (s *LoadingScreen) View(width, height int) string {
	spinner := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(spinnerFrames[s.frame%len(spinnerFrames)])
	tip := tips[(s.frame/20)%len(tips)]

	lines := []string{
		spinner + "  " + theme.Body.Render(tip),
		"",
		theme.Hint.Render(s.picked.Path),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
