package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A comprehension question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"id":   map[string]any{"type": "integer", "minimum": 0},
				"type": map[string]any{"type": "string", "enum": []any{"LITERAL", "INFERENTIAL", "EVALUATIVE"}},
			},
			"required": []any{"text", "id"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"text":"Qui est le héros ?","id":1,"type":"LITERAL"}`)
	_, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"Pourquoi part-il ?","id":2}`)
	_, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"Où vit-il ?"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"Que penses-tu ?","id":"ten"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"text":"Quand ?","id":9,"type":"OPINION"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	_, err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"story": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"ids": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "integer"},
					"minItems": 3,
				},
			},
			"required": []any{"story", "ids"},
		},
	}

	valid := json.RawMessage(`{"story":{"title":"Le renard"},"ids":[1,2,3]}`)
	if _, err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"story":{"title":"Le renard"},"ids":["not","ints","here"]}`)
	if _, err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}

	short := json.RawMessage(`{"story":{"title":"Le renard"},"ids":[1]}`)
	if _, err := validateResponse(schema, short); err == nil {
		t.Fatal("expected error for too few items")
	}
}

func TestValidateResponse_StripsCodeFence(t *testing.T) {
	raw := json.RawMessage("```json\n{\"text\":\"Qui parle ?\",\"id\":3}\n```")
	got, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(got) != `{"text":"Qui parle ?","id":3}` {
		t.Errorf("content = %s", got)
	}
}

func TestValidateResponse_ReusesCompiledSchema(t *testing.T) {
	schema := testSchema()
	schema.Name = "test-cached"
	if _, err := validateResponse(schema, json.RawMessage(`{"text":"a","id":1}`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load("test-cached"); !ok {
		t.Fatal("expected the compiled schema to be cached")
	}
	if _, err := validateResponse(schema, json.RawMessage(`{"text":"b"}`)); err == nil {
		t.Fatal("expected the cached schema to still reject a missing id")
	}
}
