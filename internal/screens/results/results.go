// Package results shows the score, the closing message and a review of
// every question.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/screens/confirm"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// feedbackMsg carries the closing message.
type feedbackMsg string

// exportedMsg reports a saved report.
type exportedMsg struct {
	Path   string
	Format report.Format
	Err    error
}

// ResultsScreen is the last screen of an assessment.
type ResultsScreen struct {
	orch      *assessment.Orchestrator
	reportDir string
	menu      components.Menu
	offset    int
	saved     []string
	alert     string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. Reports are written into reportDir.
func New(orch *assessment.Orchestrator, reportDir string) *ResultsScreen {
	s := &ResultsScreen{orch: orch, reportDir: reportDir}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Télécharger le rapport (CSV)", Hotkey: "c", Action: s.export(report.FormatCSV)},
		{Label: "Télécharger le rapport (Excel)", Hotkey: "x", Action: s.export(report.FormatXLSX)},
		{Label: "Terminer", Hotkey: "q", Action: s.askQuit},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	orch := s.orch
	return func() tea.Msg {
		return feedbackMsg(orch.RequestFinalFeedback(context.Background()))
	}
}

func (s *ResultsScreen) Title() string {
	return "Résultats"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choisir"},
		{Key: "Entrée", Description: "Valider"},
		{Key: "PgUp/PgDn", Description: "Revoir les questions"},
	}
}

func (s *ResultsScreen) export(f report.Format) func() tea.Cmd {
	return func() tea.Cmd {
		r, err := s.orch.Report()
		if err != nil {
			return nil
		}
		dir := s.reportDir
		return func() tea.Msg {
			path, err := report.Save(dir, r, f)
			return exportedMsg{Path: path, Format: f, Err: err}
		}
	}
}

// askQuit opens the confirmation once the closing message has arrived,
// so its reply is never routed to the dialog.
func (s *ResultsScreen) askQuit() tea.Cmd {
	if _, ready := s.orch.FinalFeedback(); !ready {
		return nil
	}
	c := confirm.New(s.orch)
	return func() tea.Msg { return router.PushScreenMsg{Screen: c} }
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		_ = s.orch.SetFinalFeedback(string(msg))
		return s, nil

	case exportedMsg:
		if err := s.orch.RecordExport(msg.Path, msg.Format, msg.Err); err != nil {
			s.alert = s.orch.Alert()
		} else {
			s.alert = ""
			s.saved = append(s.saved, msg.Path)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgup":
			s.offset -= 5
			return s, nil
		case "pgdown":
			s.offset += 5
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	inner := min(width-6, 100)

	var head strings.Builder
	head.WriteString(theme.Title.Width(inner).Render("Bravo " + s.orch.User().FirstName + " !"))
	head.WriteString("\n\n")
	head.WriteString(renderScore(s.orch.Score()))
	head.WriteString("\n\n")

	if fb, ready := s.orch.FinalFeedback(); ready {
		head.WriteString(theme.Card.Width(inner).Render(layout.Wrap(fb, inner-6)))
	} else {
		head.WriteString(theme.Card.Width(inner).Render(theme.Hint.Render("Ton message arrive...")))
	}
	head.WriteString("\n\n")
	head.WriteString(s.menu.View())

	for _, p := range s.saved {
		head.WriteString(theme.Correct.Render("Rapport enregistré : ") + theme.Body.Render(p) + "\n")
	}
	if s.alert != "" {
		head.WriteString(theme.Alert.Render(s.alert) + "\n")
	}

	headView := head.String()
	review := renderReview(s.orch.Results(), inner)
	avail := max(height-lipgloss.Height(headView)-1, 3)
	visible, offset := layout.Window(review, s.offset, avail)
	s.offset = offset

	return lipgloss.NewStyle().PaddingLeft(2).Render(headView + "\n" + visible)
}

func renderScore(sc score.UserScore) string {
	top := score.Max()
	cell := func(label string, got, out int) string {
		return theme.Card.Padding(0, 2).Render(
			theme.Hint.Render(label) + "\n" + theme.Selected.Render(fmt.Sprintf("%d/%d", got, out)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(story.Literal.Label(), sc.Literal, top.Literal),
		cell(story.Inferential.Label(), sc.Inferential, top.Inferential),
		cell(story.Evaluative.Label(), sc.Evaluative, top.Evaluative),
		cell("Total", sc.Total, top.Total),
	)
}

func renderReview(results []quiz.Result, width int) string {
	var b strings.Builder
	b.WriteString(theme.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	for i, r := range results {
		mark := theme.Correct.Render("✓")
		if !r.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		badge := lipgloss.NewStyle().Foreground(theme.TypeColor(string(r.Question.Type))).Render("[" + r.Question.Type.Label() + "]")
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, badge, theme.Body.Render(layout.Wrap(fmt.Sprintf("%d. %s", i+1, r.Question.Text), width-20))))

		answer := r.UserAnswer
		if strings.TrimSpace(answer) == "" {
			answer = "(aucune réponse)"
		}
		b.WriteString("   " + theme.Hint.Render("Ta réponse : ") + theme.Body.Render(layout.Wrap(answer, width-16)) + "\n")
		if r.Feedback != "" {
			b.WriteString("   " + theme.Hint.Render(layout.Wrap(r.Feedback, width-3)) + "\n")
		}
		if !r.IsCorrect && r.CorrectAnswer != "" {
			b.WriteString("   " + theme.Correct.Render("Réponse attendue : ") + theme.Body.Render(layout.Wrap(r.CorrectAnswer, width-22)) + "\n")
		}
	}
	return b.String()
}
