package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

type historyLoadedMsg struct {
	Assessments []store.AssessmentRecord
	Err         error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEventData
	Err       error
}

// HistoryScreen lists past assessments and, on demand, their answers.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	assessments []store.AssessmentRecord
	answers     map[string][]store.AnswerEventData // sessionID → answers
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerEventData),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.QueryAssessments(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Assessments: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historique"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Détails"},
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.AnswersForSession(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.assessments) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.assessments[s.selected].SessionID
			if _, ok := s.answers[id]; !ok && s.expanded[s.selected] {
				return s, s.loadAnswers(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErreur : %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Chargement...")
	}
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Aucune évaluation pour l'instant.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s %s  %-28.28s  L %d/4  I %d/4  É %d/2  Total %d/10  %s",
			prefix,
			a.Timestamp.Format("02/01/2006 15:04"),
			a.FirstName, a.LastName,
			a.StoryTitle,
			a.ScoreLiteral, a.ScoreInferential, a.ScoreEvaluative, a.ScoreTotal,
			formatDuration(a.DurationSecs),
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(a.SessionID, width))
		}
	}

	visible, _ := layout.Window(b.String(), s.selected-2, height)
	return visible
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return dim.Render("      Chargement des réponses...") + "\n"
	}
	if len(answers) == 0 {
		return dim.Render("      Aucune réponse enregistrée") + "\n"
	}

	var b strings.Builder
	for _, ans := range answers {
		mark := theme.Incorrect.Render("✗")
		if ans.Correct {
			mark = theme.Correct.Render("✓")
		}
		text := ans.StudentAnswer
		if strings.TrimSpace(text) == "" {
			text = "(aucune réponse)"
		}
		// Attempt counts wrong submissions; a correct one is the next try.
		try := ans.Attempt
		if ans.Correct {
			try++
		}
		line := fmt.Sprintf("Q%d essai %d  %s  →  %s", ans.QuestionID, try, ans.QuestionText, text)
		b.WriteString("      " + mark + " " + lipgloss.NewStyle().Foreground(theme.TypeColor(ans.QuestionType)).
			Render(layout.Wrap(line, max(width-10, 10))))
		b.WriteString("\n")
	}
	return b.String()
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
