package gateway

import (
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/story"
)

// StorySchema constrains the transcription and quiz response. The
// glossary upper bound is enforced after parsing so a seventh word only
// gets dropped.
var StorySchema = &llm.Schema{
	Name:        "reading-assessment",
	Description: "Transcribed reading text with a glossary and ten comprehension questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Title of the text, as printed or a short faithful one",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "The full text transcribed word for word from the image",
			},
			"glossary": map[string]any{
				"type":     "array",
				"minItems": story.MinGlossary,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":       map[string]any{"type": "string"},
						"definition": map[string]any{"type": "string", "description": "Simple definition for a 10 year old"},
					},
					"required":             []any{"word", "definition"},
					"additionalProperties": false,
				},
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": story.QuestionCount,
				"maxItems": story.QuestionCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer"},
						"text": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{string(story.Literal), string(story.Inferential), string(story.Evaluative)},
						},
					},
					"required":             []any{"id", "text", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "content", "glossary", "questions"},
		"additionalProperties": false,
	},
}
