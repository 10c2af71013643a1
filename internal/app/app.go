package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/screens/history"
	"github.com/abhisek/lectio/internal/screens/login"
	"github.com/abhisek/lectio/internal/screens/quiz"
	"github.com/abhisek/lectio/internal/screens/reading"
	"github.com/abhisek/lectio/internal/screens/results"
	"github.com/abhisek/lectio/internal/screens/setup"
	"github.com/abhisek/lectio/internal/screens/welcome"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Orchestrator *assessment.Orchestrator
	EventRepo    store.EventRepo // nil hides the history screen
	ReportDir    string
	Logger       *zap.Logger
	SkipSplash   bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := AppModel{opts: opts}
	var first screen.Screen = m.screenFor(opts.Orchestrator.State())
	if !opts.SkipSplash {
		first = welcome.New(func() screen.Screen { return m.screenFor(opts.Orchestrator.State()) })
	}
	m.router = router.New(first)
	return m
}

// screenFor builds the screen of state. LOADING_STORY is not mapped: the
// setup screen hands its picked image to the loading screen directly.
func (m AppModel) screenFor(state assessment.State) screen.Screen {
	orch := m.opts.Orchestrator
	switch state {
	case assessment.Setup:
		return setup.New(orch)
	case assessment.Reading:
		return reading.New(orch)
	case assessment.Quiz:
		return quiz.New(orch)
	case assessment.Results:
		return results.New(orch, m.opts.ReportDir)
	}

	var hist func() screen.Screen
	if repo := m.opts.EventRepo; repo != nil {
		hist = func() screen.Screen { return history.New(repo) }
	}
	return login.New(orch, hist)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StateChangedMsg:
		state := m.opts.Orchestrator.State()
		if state == assessment.LoadingStory {
			return m, nil
		}
		m.opts.Logger.Debug("showing screen", zap.String("state", string(state)))
		return m, m.router.Reset(m.screenFor(state))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	pupil := ""
	if u := m.opts.Orchestrator.User(); u.FirstName != "" {
		pupil = u.FullName()
	}
	header := layout.RenderHeader(title, pupil, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Entrée", Description: "Valider"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
