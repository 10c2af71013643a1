package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"id":    map[string]any{"type": "integer"},
			"type":  map[string]any{"type": "string", "enum": []any{"LITERAL", "INFERENTIAL", "EVALUATIVE"}},
			"scores": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "integer"},
				"minItems": 3,
				"maxItems": float64(6),
			},
		},
		"required": []any{"title", "id"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["id"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for id, got %s", schema.Properties["id"].Type)
	}
	if len(schema.Properties["type"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["type"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	scores := schema.Properties["scores"]
	if scores.MinItems == nil || *scores.MinItems != 3 {
		t.Fatalf("expected minItems 3, got %v", scores.MinItems)
	}
	if scores.MaxItems == nil || *scores.MaxItems != 6 {
		t.Fatalf("expected maxItems 6, got %v", scores.MaxItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents_InlinesImages(t *testing.T) {
	contents := buildGeminiContents([]Message{{
		Role:    RoleUser,
		Content: "Transcris cette page.",
		Images:  []Image{{MIMEType: "image/png", Data: []byte("png")}},
	}})

	if len(contents) != 1 || contents[0].Role != "user" {
		t.Fatalf("expected one user content, got %+v", contents)
	}
	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/png" {
		t.Fatalf("expected inline png part, got %+v", parts[1])
	}
}

func TestGeminiText_SkipsThoughtParts(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "pondering", Thought: true},
				{Text: `{"title":`},
				{Text: `"Le renard"}`},
			}},
		}},
	}
	if got := geminiText(result); got != `{"title":"Le renard"}` {
		t.Fatalf("geminiText() = %q", got)
	}
	if got := geminiText(nil); got != "" {
		t.Fatalf("geminiText(nil) = %q", got)
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}},
	}
	if got := mapGeminiStopReason(result); got != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", got)
	}
	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Fatalf("expected end, got %q", got)
	}
}
