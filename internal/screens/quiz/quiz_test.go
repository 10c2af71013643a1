package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/llm"
	qz "github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/story"
	"github.com/abhisek/lectio/internal/upload"
)

// fakeGateway accepts every answer that mentions "renard" and gives
// partial credit to answers that mention "faim".
type fakeGateway struct{}

func (fakeGateway) GenerateAssessment(context.Context, llm.Image) (*story.StoryData, error) {
	return story.Sample(), nil
}

func (fakeGateway) EvaluateAnswer(_ context.Context, _ story.Question, answer string, _ *story.StoryData) (story.EvaluationResult, error) {
	if strings.Contains(answer, "renard") {
		return story.EvaluationResult{IsCorrect: true, Score: 2, Feedback: "Bravo !"}, nil
	}
	if strings.Contains(answer, "faim") {
		return story.EvaluationResult{Score: 1, Feedback: "Presque !", CorrectAnswer: "Le renard a faim."}, nil
	}
	return story.EvaluationResult{Feedback: "Relis le texte.", CorrectAnswer: "Le renard."}, nil
}

func (fakeGateway) GenerateFinalFeedback(context.Context, score.UserScore, string) string {
	return "Bien joué !"
}

func newTestQuiz(t *testing.T) (*QuizScreen, *assessment.Orchestrator) {
	t.Helper()
	orch := assessment.New(fakeGateway{}, nil, nil, nil)
	if err := orch.Login("Amine", "Benali"); err != nil {
		t.Fatal(err)
	}
	if err := orch.Upload(context.Background(), upload.Picked{URL: "file:///page.png"}); err != nil {
		t.Fatal(err)
	}
	if err := orch.FinishReading(); err != nil {
		t.Fatal(err)
	}
	s := New(orch)
	s.Init()
	return s, orch
}

func press(s *QuizScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// evaluated runs cmd and returns the batch result it carries.
func evaluated(t *testing.T, cmd tea.Cmd) batchEvaluatedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msgs := []tea.Msg{cmd()}
	for len(msgs) > 0 {
		msg := msgs[0]
		msgs = msgs[1:]
		switch m := msg.(type) {
		case batchEvaluatedMsg:
			return m
		case tea.BatchMsg:
			for _, c := range m {
				if c != nil {
					msgs = append(msgs, c())
				}
			}
		}
	}
	t.Fatal("no batchEvaluatedMsg produced")
	return batchEvaluatedMsg{}
}

func answerAll(t *testing.T, orch *assessment.Orchestrator, answer string) {
	t.Helper()
	for _, q := range orch.Story().Questions {
		if st, _ := orch.Engine().State(q.ID); st.Status.Terminal() {
			continue
		}
		if err := orch.SetAnswer(q.ID, answer); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTyping_StoresAnswer(t *testing.T) {
	s, orch := newTestQuiz(t)

	s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})

	st, _ := orch.Engine().State(1)
	if st.Answer != "le" {
		t.Errorf("answer = %q, want %q", st.Answer, "le")
	}
}

func TestMove_WrapsAround(t *testing.T) {
	s, _ := newTestQuiz(t)

	press(s, tea.KeyUp)
	if s.selected != 9 {
		t.Errorf("selected = %d, want 9", s.selected)
	}
	press(s, tea.KeyDown)
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestSubmit_RetryThenResults(t *testing.T) {
	s, orch := newTestQuiz(t)
	answerAll(t, orch, "le renard")
	if err := orch.SetAnswer(4, "je ne sais pas"); err != nil {
		t.Fatal(err)
	}

	msg := evaluated(t, press(s, tea.KeyEnter))
	if !orch.Engine().Submitting() {
		t.Error("expected the engine to be locked while evaluating")
	}
	s.Update(msg)

	st, _ := orch.Engine().State(4)
	if st.Status != qz.IncorrectRetry {
		t.Fatalf("question 4 status = %s, want INCORRECT_RETRY", st.Status)
	}
	if s.questionID() != 4 {
		t.Errorf("selected question = %d, want 4", s.questionID())
	}

	answerAll(t, orch, "le renard encore")
	s.Update(evaluated(t, press(s, tea.KeyEnter)))
	if !orch.Engine().IsAllComplete() {
		t.Fatal("expected every question to be terminal")
	}

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screen.StateChangedMsg); !ok {
		t.Errorf("expected StateChangedMsg, got %T", cmd())
	}
	if orch.State() != assessment.Results {
		t.Errorf("state = %s, want RESULTS", orch.State())
	}
	if got := orch.Score().Total; got != 10 {
		t.Errorf("total = %d, want 10", got)
	}
}

func TestTyping_IgnoredOnTerminalQuestion(t *testing.T) {
	s, orch := newTestQuiz(t)
	answerAll(t, orch, "le renard")
	s.Update(evaluated(t, press(s, tea.KeyEnter)))

	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	st, _ := orch.Engine().State(1)
	if st.Answer != "le renard" {
		t.Errorf("answer = %q, want it unchanged", st.Answer)
	}
}

func TestView_ShowsQuestions(t *testing.T) {
	s, _ := newTestQuiz(t)
	v := s.View(100, 40)
	if !strings.Contains(v, "Question 1 ?") {
		t.Error("view is missing the first question")
	}
}

func TestView_ShowsPartialCreditDots(t *testing.T) {
	s, orch := newTestQuiz(t)
	if err := orch.SetAnswer(1, "il a faim"); err != nil {
		t.Fatal(err)
	}
	s.Update(evaluated(t, press(s, tea.KeyEnter)))

	st, _ := orch.Engine().State(1)
	if st.Status != qz.IncorrectRetry {
		t.Fatalf("question 1 status = %s, want INCORRECT_RETRY", st.Status)
	}
	v := s.View(100, 200)
	if !strings.Contains(v, "●○") || !strings.Contains(v, "Presque !") {
		t.Error("view is missing the partial credit dots")
	}
	// blank answers are incomplete and carry no score
	if strings.Contains(v, "○○") {
		t.Error("incomplete answers should not show score dots")
	}
}
