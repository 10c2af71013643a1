// Package gateway wraps the three LLM operations of an assessment:
// transcribing a page into a quiz, grading one answer, and writing the
// closing message. Model output is treated as untrusted and every field
// is re-validated or defaulted.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/story"
)

// Gateway mediates all LLM traffic. It holds no session state and is safe
// for concurrent use.
type Gateway struct {
	provider llm.Provider
	cfg      Config
	msgs     *messages.Catalog
	logger   *zap.Logger
}

// New creates a Gateway. A nil catalog uses the embedded French one; a nil
// logger discards logs.
func New(provider llm.Provider, cfg Config, msgs *messages.Catalog, logger *zap.Logger) *Gateway {
	if msgs == nil {
		msgs = messages.French()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, cfg: cfg, msgs: msgs, logger: logger}
}

// Messages returns the catalog used for default content.
func (g *Gateway) Messages() *messages.Catalog {
	return g.msgs
}

// GenerateAssessment transcribes the page in img and builds its quiz.
// An unreadable page yields the extraction-failure sentinel as content.
// Any transport, parse or structural failure is returned as *LLMFailure.
func (g *Gateway) GenerateAssessment(ctx context.Context, img llm.Image) (*story.StoryData, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeStoryGen)
	start := time.Now()

	req := llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: assessmentUserPrompt,
			Images:  []llm.Image{img},
		}},
		Schema:      StorySchema,
		MaxTokens:   g.cfg.Assessment.MaxTokens,
		Temperature: g.cfg.Assessment.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.logger.Error("assessment generation failed", zap.Error(err), zap.Bool("transient", llm.Transient(err)))
		return nil, &LLMFailure{Op: OpAssessment, Err: err}
	}

	var s story.StoryData
	if err := json.Unmarshal(extractJSON(resp.Content), &s); err != nil {
		g.logger.Error("assessment response unparsable", zap.Error(err))
		return nil, &LLMFailure{Op: OpAssessment, Err: fmt.Errorf("parse story: %w", err)}
	}

	story.Normalize(&s)
	if s.Content == "" {
		g.logger.Warn("no text extracted from image")
		s.Content = g.msgs.ExtractionFailed
	}
	if err := story.Validate(&s); err != nil {
		g.logger.Error("generated story rejected", zap.Error(err))
		return nil, &LLMFailure{Op: OpAssessment, Err: err}
	}

	g.logger.Info("assessment generated",
		zap.String("title", s.Title),
		zap.Int("content_chars", len(s.Content)),
		zap.Int("glossary", len(s.Glossary)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &s, nil
}

// EvaluateAnswer grades answer against q. Transport and parse failures
// produce a neutral wrong verdict with default feedback; the only error
// returned is the caller's context cancellation.
func (g *Gateway) EvaluateAnswer(ctx context.Context, q story.Question, answer string, s *story.StoryData) (story.EvaluationResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAnswerEval)

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationMessage(q, answer, s)},
		},
		JSONMode:    true,
		MaxTokens:   g.cfg.Evaluation.MaxTokens,
		Temperature: g.cfg.Evaluation.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return story.EvaluationResult{}, ctx.Err()
		}
		g.logger.Warn("evaluation fell back to neutral result",
			zap.Int("question_id", q.ID),
			zap.Error(err),
		)
		return g.neutralResult(), nil
	}

	var raw map[string]any
	if err := json.Unmarshal(extractJSON(resp.Content), &raw); err != nil {
		g.logger.Warn("evaluation response unparsable",
			zap.Int("question_id", q.ID),
			zap.Error(err),
		)
		return g.neutralResult(), nil
	}

	return g.normalizeEvaluation(q, raw), nil
}

// GenerateFinalFeedback writes the closing message for firstName. Any
// failure returns the default encouragement.
func (g *Gateway) GenerateFinalFeedback(ctx context.Context, sc score.UserScore, firstName string) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeFinalFeedback)

	req := llm.Request{
		System: finalFeedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFinalFeedbackMessage(sc, firstName)},
		},
		MaxTokens:   g.cfg.FinalFeedback.MaxTokens,
		Temperature: g.cfg.FinalFeedback.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.logger.Warn("final feedback fell back to default", zap.Error(err))
		return g.msgs.FinalEncouragement
	}

	text := cleanText(resp.Content)
	if text == "" || g.msgs.ContainsHedging(text) {
		g.logger.Warn("final feedback unusable, using default", zap.Int("chars", len(text)))
		return g.msgs.FinalEncouragement
	}
	return text
}

func (g *Gateway) neutralResult() story.EvaluationResult {
	return story.EvaluationResult{
		IsCorrect: false,
		Feedback:  g.msgs.DefaultFeedback,
	}
}

// normalizeEvaluation coerces the loosely typed model object into an
// EvaluationResult and removes refusal text.
func (g *Gateway) normalizeEvaluation(q story.Question, raw map[string]any) story.EvaluationResult {
	res := story.EvaluationResult{
		IsCorrect:     coerceBool(raw["isCorrect"]),
		Score:         coerceScore(raw["score"]),
		Feedback:      coerceString(raw["feedback"]),
		CorrectAnswer: coerceString(raw["correctAnswer"]),
	}
	res.IsIncomplete = coerceBool(raw["isIncomplete"])

	if g.msgs.ContainsHedging(res.CorrectAnswer) {
		g.logger.Warn("refusal removed from correct answer", zap.Int("question_id", q.ID))
		res.CorrectAnswer = ""
	}
	if res.Feedback == "" || g.msgs.ContainsHedging(res.Feedback) {
		res.Feedback = g.msgs.DefaultFeedback
	}
	return res
}

// extractJSON returns the JSON object embedded in model output, dropping
// code fences and surrounding prose. Output with no object yields "{}".
func extractJSON(content []byte) []byte {
	s := strings.TrimSpace(string(content))
	// Some providers return the object as a JSON string literal.
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			s = strings.TrimSpace(inner)
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return []byte("{}")
	}
	return []byte(s[start : end+1])
}

// cleanText strips code fences and wrapping quotes from plain-text output.
func cleanText(content []byte) string {
	s := strings.TrimSpace(string(content))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			s = inner
		}
	}
	return strings.TrimSpace(s)
}
