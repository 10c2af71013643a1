// Package quiz is the question screen: one answer field per question,
// submitted together.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/assessment"
	qz "github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
)

const answerLimit = 500

// QuizScreen edits answers and submits them in batches.
type QuizScreen struct {
	orch *assessment.Orchestrator
	// kept so the last frame still renders after FinishQuiz
	eng      *qz.Engine
	selected int
	input    components.TextInput
	alert    string
	// spinner frame while a batch is in flight
	frame int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. The orchestrator must be in QUIZ.
func New(orch *assessment.Orchestrator) *QuizScreen {
	s := &QuizScreen{
		orch:  orch,
		eng:   orch.Engine(),
		input: components.NewTextInput("", "Écris ta réponse...", answerLimit),
	}
	s.loadSelected()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *QuizScreen) Title() string {
	return "Questions"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.engine().IsAllComplete() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Revoir"},
			{Key: "Entrée", Description: "Voir mes résultats"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/Tab", Description: "Question"},
		{Key: "Entrée", Description: "Valider mes réponses"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (s *QuizScreen) engine() *qz.Engine {
	return s.eng
}

func (s *QuizScreen) questionID() int {
	return s.engine().Story().Questions[s.selected].ID
}

// loadSelected copies the stored answer of the selected question into
// the input.
func (s *QuizScreen) loadSelected() {
	st, _ := s.engine().State(s.questionID())
	s.input.SetValue(st.Answer)
}

func (s *QuizScreen) move(delta int) tea.Cmd {
	n := len(s.engine().Story().Questions)
	s.selected = (s.selected + delta + n) % n
	s.loadSelected()
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchEvaluatedMsg:
		return s, s.handleEvaluated(msg)

	case spinnerTickMsg:
		if !s.engine().Submitting() {
			return s, nil
		}
		s.frame++
		return s, spin()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.move(1)
		case "shift+tab", "up":
			return s, s.move(-1)
		case "enter":
			return s, s.submit()
		}
	}

	st, _ := s.engine().State(s.questionID())
	if st.Status.Terminal() {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != st.Answer {
		if err := s.orch.SetAnswer(s.questionID(), v); err != nil {
			s.loadSelected()
		}
	}
	return s, cmd
}

func (s *QuizScreen) submit() tea.Cmd {
	if s.engine().IsAllComplete() {
		if err := s.orch.FinishQuiz(context.Background()); err != nil {
			return nil
		}
		return screen.StateChanged
	}

	b, err := s.orch.BeginSubmit()
	if err != nil || b == nil {
		// Already in flight.
		return nil
	}
	s.alert = ""
	orch := s.orch
	return tea.Batch(spin(), func() tea.Msg {
		outcomes, err := orch.Evaluate(context.Background(), b)
		return batchEvaluatedMsg{Batch: b, Outcomes: outcomes, Err: err}
	})
}

func (s *QuizScreen) handleEvaluated(msg batchEvaluatedMsg) tea.Cmd {
	if _, err := s.orch.ApplySubmit(context.Background(), msg.Batch, msg.Outcomes, msg.Err); err != nil {
		s.alert = s.orch.Alert()
		return nil
	}
	// Jump to the first question that still needs an answer.
	for i, q := range s.engine().Story().Questions {
		if st, _ := s.engine().State(q.ID); !st.Status.Terminal() {
			s.selected = i
			break
		}
	}
	s.loadSelected()
	return nil
}
