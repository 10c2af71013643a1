package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestNewOpenRouterProvider_ModelPassThrough(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gemini-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Friendly names are not mapped for OpenRouter.
	if p.ModelID() != "gemini-flash" {
		t.Errorf("model = %q, want %q", p.ModelID(), "gemini-flash")
	}
}

func TestOpenRouterProvider_SendsAttributionAndImage(t *testing.T) {
	var (
		gotPath, gotTitle, gotReferer, gotAuth string
		gotBody                                map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "gen-test",
			"model": "google/gemini-2.5-flash",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"title":"Le renard"}`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 900, "completion_tokens": 300, "total_tokens": 1200},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{
			Role:    RoleUser,
			Content: "Transcris le texte.",
			Images:  []Image{{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}},
		}},
		JSONMode:  true,
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v1/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotTitle != openRouterTitle || gotReferer != openRouterReferer {
		t.Errorf("attribution headers = %q, %q", gotTitle, gotReferer)
	}
	if gotAuth != "Bearer sk-or-test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["model"] != "google/gemini-2.5-flash" {
		t.Errorf("model sent = %v", gotBody["model"])
	}
	if resp.Usage.TotalTokens != 1200 {
		t.Errorf("total tokens = %d, want 1200", resp.Usage.TotalTokens)
	}
}
