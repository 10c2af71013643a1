package quiz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

func spin() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg { return spinnerTickMsg(t) })
}

func statusColor(s qz.Status) color.Color {
	switch s {
	case qz.Correct:
		return theme.Success
	case qz.FailedFinal:
		return theme.Error
	case qz.IncorrectRetry:
		return theme.Accent
	}
	return nil
}

func statusMark(s qz.Status) string {
	switch s {
	case qz.Correct:
		return theme.Correct.Render("✓")
	case qz.FailedFinal:
		return theme.Incorrect.Render("✗")
	case qz.IncorrectRetry:
		return theme.Retry.Render("↻")
	}
	return theme.Hint.Render("·")
}

// scoreDots renders the 0..2 evaluator score as filled dots.
func scoreDots(score int) string {
	return strings.Repeat("●", score) + strings.Repeat("○", 2-min(max(score, 0), 2))
}

func typeBadge(t story.QuestionType) string {
	return lipgloss.NewStyle().Foreground(theme.TypeColor(string(t))).Render("[" + t.Label() + "]")
}

func (s *QuizScreen) View(width, height int) string {
	e := s.engine()
	inner := min(width-6, 100)

	var top strings.Builder
	cells := make([]color.Color, 0, len(e.Story().Questions))
	for _, q := range e.Story().Questions {
		st, _ := e.State(q.ID)
		cells = append(cells, statusColor(st.Status))
	}
	top.WriteString(components.ProgressBar{Cells: cells, Done: e.Progress().Completed}.View())
	switch {
	case e.Submitting():
		top.WriteString("   " + theme.Selected.Render(spinnerFrames[s.frame%len(spinnerFrames)]) +
			theme.Hint.Render(" correction en cours..."))
	case e.IsAllComplete():
		top.WriteString("   " + theme.Correct.Render("Terminé ! Appuie sur Entrée pour voir tes résultats."))
	}
	if s.alert != "" {
		top.WriteString("\n" + theme.Alert.Render(s.alert))
	}

	var body strings.Builder
	selectedStart := 0
	for i, q := range e.Story().Questions {
		if i == s.selected {
			selectedStart = strings.Count(body.String(), "\n")
		}
		body.WriteString(s.renderQuestion(i, q, inner))
		body.WriteString("\n")
	}

	topView := top.String()
	avail := max(height-lipgloss.Height(topView)-1, 1)
	visible, _ := layout.Window(body.String(), selectedStart-2, avail)

	return lipgloss.NewStyle().PaddingLeft(2).Render(topView + "\n\n" + visible)
}

func (s *QuizScreen) renderQuestion(i int, q story.Question, width int) string {
	st, _ := s.engine().State(q.ID)
	selected := i == s.selected

	var b strings.Builder
	title := fmt.Sprintf("%d. %s", i+1, q.Text)
	titleStyle := theme.Unselected
	if selected {
		titleStyle = theme.Selected
	}
	b.WriteString(statusMark(st.Status) + " " + typeBadge(q.Type) + " " + titleStyle.Render(layout.Wrap(title, width-20)))
	b.WriteString("\n")

	switch {
	case selected && !st.Status.Terminal():
		b.WriteString("   " + s.input.View())
	case st.Answer != "":
		b.WriteString("   " + theme.Body.Render(layout.Wrap(st.Answer, width-3)))
	default:
		b.WriteString("   " + theme.Hint.Render("(pas encore de réponse)"))
	}
	b.WriteString("\n")

	if fb := st.Feedback; fb != nil {
		line := fb.Feedback
		if st.Status != qz.Correct && (!fb.IsIncomplete || fb.Score > 0) {
			line = scoreDots(fb.Score) + "  " + line
		}
		b.WriteString("   " + theme.Hint.Render(layout.Wrap(line, width-3)))
		b.WriteString("\n")
		if st.Status == qz.FailedFinal && fb.CorrectAnswer != "" {
			b.WriteString("   " + theme.Correct.Render("Réponse attendue : ") +
				theme.Body.Render(layout.Wrap(fb.CorrectAnswer, width-22)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
