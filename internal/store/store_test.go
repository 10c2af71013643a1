package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "answer_events", "assessment_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestLLMEventsAppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"story-gen", "answer-eval", "answer-eval"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 20,
			LatencyMs:    300,
			Success:      true,
			RequestBody:  "[user]\nÉvalue.\n",
			ResponseBody: `{"isCorrect":true}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Sequence < all[1].Sequence {
		t.Fatal("expected newest first")
	}

	evals, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "answer-eval", Limit: 1})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(evals) != 1 || evals[0].Purpose != "answer-eval" {
		t.Fatalf("unexpected filtered result: %+v", evals)
	}

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"isCorrect":true}` {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "answer-eval", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "answer-eval", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "story-gen", InputTokens: 1000, OutputTokens: 800, LatencyMs: 4000, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	eval := byPurpose[0]
	if eval.Purpose != "answer-eval" || eval.Calls != 2 || eval.InputTokens != 30 || eval.AvgLatencyMs != 200 {
		t.Fatalf("unexpected answer-eval stats: %+v", eval)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "gemini-2.5-pro" || byModel[1].OutputTokens != 800 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
}

func TestAssessmentsAndAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: 1, QuestionType: "LITERAL", QuestionText: "Qui ?", StudentAnswer: "Le renard", Attempt: 1, Status: "CORRECT", Correct: true, Score: 2, Feedback: "Bravo"},
		{SessionID: "s1", QuestionID: 2, QuestionType: "INFERENTIAL", QuestionText: "Pourquoi ?", StudentAnswer: "", Attempt: 1, Status: "INCORRECT_RETRY", Feedback: "Essaie encore"},
		{SessionID: "s2", QuestionID: 1, QuestionType: "LITERAL", QuestionText: "Qui ?", StudentAnswer: "Le loup", Attempt: 1, Status: "CORRECT", Correct: true, Score: 2},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	err := repo.AppendAssessment(ctx, AssessmentEventData{
		SessionID:    "s1",
		FirstName:    "Léa",
		LastName:     "Martin",
		StoryTitle:   "Le renard",
		ScoreLiteral: 3,
		ScoreTotal:   3,
		DurationSecs: int((5 * time.Minute).Seconds()),
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	got, err := repo.AnswersForSession(ctx, "s1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(got) != 2 || got[0].QuestionID != 1 || got[1].Status != "INCORRECT_RETRY" {
		t.Fatalf("unexpected answers: %+v", got)
	}

	list, err := repo.QueryAssessments(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query assessments: %v", err)
	}
	if len(list) != 1 || list[0].FirstName != "Léa" || list[0].DurationSecs != 300 {
		t.Fatalf("unexpected assessments: %+v", list)
	}
}
