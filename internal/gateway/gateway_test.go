package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/story"
)

func newTestGateway(p llm.Provider) *Gateway {
	return New(p, DefaultConfig(), nil, nil)
}

func storyJSON(t *testing.T, s *story.StoryData) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	return raw
}

var testImage = llm.Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

func TestGenerateAssessment_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: storyJSON(t, story.Sample())})
	g := newTestGateway(mock)

	s, err := g.GenerateAssessment(context.Background(), testImage)
	require.NoError(t, err)
	assert.Equal(t, "Le renard et la cigogne", s.Title)
	assert.Len(t, s.Questions, 10)
	assert.Equal(t, 4, s.CountByType()[story.Literal])

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, StorySchema, req.Schema)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, []llm.Image{testImage}, req.Messages[0].Images)
}

func TestGenerateAssessment_EmptyContentUsesSentinel(t *testing.T) {
	s := story.Sample()
	s.Content = "   "
	g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: storyJSON(t, s)}))

	got, err := g.GenerateAssessment(context.Background(), testImage)
	require.NoError(t, err)
	assert.Equal(t, messages.French().ExtractionFailed, got.Content)
}

func TestGenerateAssessment_Failures(t *testing.T) {
	wrongMix := story.Sample()
	wrongMix.Questions[0].Type = story.Evaluative

	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"transport", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"not json", llm.MockResponse{Content: json.RawMessage(`{"title": `)}},
		{"wrong composition", llm.MockResponse{Content: storyJSON(t, wrongMix)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(llm.NewMockProvider(tt.resp))
			s, err := g.GenerateAssessment(context.Background(), testImage)
			assert.Nil(t, s)
			var failure *LLMFailure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, OpAssessment, failure.Op)
		})
	}
}

func TestGenerateAssessment_RenumbersAndTrimsGlossary(t *testing.T) {
	s := story.Sample()
	for i := range s.Questions {
		s.Questions[i].ID = 1
	}
	for _, w := range []string{"renard", "soupe", "bec", "assiette"} {
		s.Glossary = append(s.Glossary, story.GlossaryItem{Word: w, Definition: "déf"})
	}
	g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: storyJSON(t, s)}))

	got, err := g.GenerateAssessment(context.Background(), testImage)
	require.NoError(t, err)
	assert.Len(t, got.Glossary, story.MaxGlossary)
	for i, q := range got.Questions {
		assert.Equal(t, i+1, q.ID)
	}
}

func TestGenerateAssessmentBase64_StripsDataURL(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: storyJSON(t, story.Sample())})
	g := newTestGateway(mock)

	_, err := g.GenerateAssessmentBase64(context.Background(), "data:image/jpeg;base64,/9j/", "")
	require.NoError(t, err)
	img := mock.Calls[0].Messages[0].Images[0]
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, img.Data)
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage("aGk=", "image/png")
	require.NoError(t, err)
	assert.Equal(t, llm.Image{MIMEType: "image/png", Data: []byte("hi")}, img)

	_, err = DecodeImage("aGk=", "text/plain")
	assert.Error(t, err)

	_, err = DecodeImage("data:image/png;base64", "")
	assert.Error(t, err)

	_, err = DecodeImage("!!!", "image/png")
	assert.Error(t, err)
}

func TestEvaluateAnswer_Normalizes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    story.EvaluationResult
	}{
		{
			name:    "well formed",
			content: `{"isCorrect":true,"score":2,"feedback":"Bravo !","correctAnswer":"Le renard."}`,
			want:    story.EvaluationResult{IsCorrect: true, Score: 2, Feedback: "Bravo !", CorrectAnswer: "Le renard."},
		},
		{
			name:    "string booleans and clamped score",
			content: "```json\n{\"isCorrect\":\"vrai\",\"score\":7,\"feedback\":\"Super\"}\n```",
			want:    story.EvaluationResult{IsCorrect: true, Score: 2, Feedback: "Super"},
		},
		{
			name:    "partial credit keeps its score",
			content: `{"isCorrect":false,"score":"1","feedback":"Presque !","correctAnswer":"Il a faim."}`,
			want:    story.EvaluationResult{IsCorrect: false, Score: 1, Feedback: "Presque !", CorrectAnswer: "Il a faim."},
		},
		{
			name:    "explicit incomplete flag",
			content: `{"isCorrect":false,"isIncomplete":true,"score":0,"feedback":"Continue !"}`,
			want:    story.EvaluationResult{IsIncomplete: true, Feedback: "Continue !"},
		},
		{
			name:    "correct answer that only mentions missing text is kept",
			content: `{"isCorrect":false,"score":0,"feedback":"Relis la fin.","correctAnswer":"Il n'y a aucun texte sur la pancarte."}`,
			want:    story.EvaluationResult{Feedback: "Relis la fin.", CorrectAnswer: "Il n'y a aucun texte sur la pancarte."},
		},
		{
			name:    "missing feedback gets default",
			content: `{"isCorrect":false,"score":-3}`,
			want:    story.EvaluationResult{Feedback: messages.French().DefaultFeedback},
		},
		{
			name:    "no object at all",
			content: `Je pense que oui.`,
			want:    story.EvaluationResult{Feedback: messages.French().DefaultFeedback},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)}))
			s := story.Sample()
			got, err := g.EvaluateAnswer(context.Background(), s.Questions[0], "Le renard", s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateAnswer_SanitizesRefusals(t *testing.T) {
	content := `{"isCorrect":false,"score":0,"feedback":"Je ne peux pas évaluer sans le texte.","correctAnswer":"Le texte n’a pas été fourni."}`
	g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)}))
	s := story.Sample()

	got, err := g.EvaluateAnswer(context.Background(), s.Questions[6], "Pour être célèbre", s)
	require.NoError(t, err)
	assert.Empty(t, got.CorrectAnswer)
	assert.Equal(t, messages.French().DefaultFeedback, got.Feedback)
	assert.False(t, messages.French().ContainsHedging(got.CorrectAnswer))
}

func TestEvaluateAnswer_TransportFailureIsNeutral(t *testing.T) {
	g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}))
	s := story.Sample()

	got, err := g.EvaluateAnswer(context.Background(), s.Questions[0], "x", s)
	require.NoError(t, err)
	assert.Equal(t, story.EvaluationResult{Feedback: messages.French().DefaultFeedback}, got)
}

func TestEvaluateAnswer_CanceledContextIsAnError(t *testing.T) {
	g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{}`)}))
	s := story.Sample()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.EvaluateAnswer(ctx, s.Questions[0], "x", s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAnswer_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"isCorrect":true}`)})
	g := newTestGateway(mock)
	s := story.Sample()

	_, err := g.EvaluateAnswer(context.Background(), s.Questions[2], "  ", s)
	require.NoError(t, err)

	req := mock.Calls[0]
	assert.True(t, req.JSONMode)
	assert.Nil(t, req.Schema)
	assert.Contains(t, req.Messages[0].Content, s.Content)
	assert.Contains(t, req.Messages[0].Content, "(aucune réponse)")
	assert.Contains(t, req.Messages[0].Content, "INFERENTIAL")
}

func TestGenerateFinalFeedback(t *testing.T) {
	sc := score.UserScore{Literal: 4, Inferential: 3, Evaluative: 1, Total: 8}

	t.Run("returns model text", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Bravo Amine ! Tu as très bien lu.")})
		g := newTestGateway(mock)
		got := g.GenerateFinalFeedback(context.Background(), sc, "Amine")
		assert.Equal(t, "Bravo Amine ! Tu as très bien lu.", got)

		msg := mock.Calls[0].Messages[0].Content
		assert.Contains(t, msg, "Amine")
		assert.Contains(t, msg, "3/4")
		assert.Contains(t, msg, "8/10")
		assert.False(t, mock.Calls[0].JSONMode)
	})

	t.Run("failure returns default", func(t *testing.T) {
		g := newTestGateway(llm.NewMockProvider())
		assert.Equal(t, messages.French().FinalEncouragement, g.GenerateFinalFeedback(context.Background(), sc, "Amine"))
	})

	t.Run("blank text returns default", func(t *testing.T) {
		g := newTestGateway(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  ")}))
		assert.Equal(t, messages.French().FinalEncouragement, g.GenerateFinalFeedback(context.Background(), sc, "Amine"))
	})
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":      `{"a":1}`,
		`Voici : {"a":{"b":2}} merci`:  `{"a":{"b":2}}`,
		`"{\"a\":1}"`:                  `{"a":1}`,
		``:                             `{}`,
		`pas de json`:                  `{}`,
	}
	for in, want := range tests {
		assert.Equal(t, want, string(extractJSON([]byte(in))), "extractJSON(%q)", in)
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Bravo !", cleanText([]byte("```\nBravo !\n```")))
	assert.Equal(t, "Bravo !", cleanText([]byte(`"Bravo !"`)))
	assert.Equal(t, "Bravo !", cleanText([]byte("  Bravo !  ")))
}
