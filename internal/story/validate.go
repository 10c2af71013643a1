package story

import (
	"fmt"
	"strings"
)

// ValidationError describes a story that breaks a structural rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("story %s: %s", e.Field, e.Message)
}

// Normalize repairs the defects a model commonly introduces without
// changing meaning: surrounding whitespace, lower-case type names,
// duplicate or missing ids, and an over-long glossary.
func Normalize(s *StoryData) {
	s.Title = strings.TrimSpace(s.Title)
	s.Content = strings.TrimSpace(s.Content)

	seen := make(map[int]bool, len(s.Questions))
	renumber := false
	for i := range s.Questions {
		q := &s.Questions[i]
		q.Text = strings.TrimSpace(q.Text)
		q.Type = QuestionType(strings.ToUpper(strings.TrimSpace(string(q.Type))))
		if q.ID <= 0 || seen[q.ID] {
			renumber = true
		}
		seen[q.ID] = true
	}
	if renumber {
		for i := range s.Questions {
			s.Questions[i].ID = i + 1
		}
	}

	glossary := s.Glossary[:0:0]
	for _, g := range s.Glossary {
		g.Word = strings.TrimSpace(g.Word)
		g.Definition = strings.TrimSpace(g.Definition)
		if g.Word == "" {
			continue
		}
		glossary = append(glossary, g)
	}
	if len(glossary) > MaxGlossary {
		glossary = glossary[:MaxGlossary]
	}
	s.Glossary = glossary
}

// Validate checks the invariants of a generated story: non-empty content,
// ten questions split 4/4/2 by type with distinct ids, and a glossary of
// three to six entries.
func Validate(s *StoryData) error {
	if strings.TrimSpace(s.Content) == "" {
		return &ValidationError{Field: "content", Message: "is empty"}
	}

	if len(s.Questions) != QuestionCount {
		return &ValidationError{
			Field:   "questions",
			Message: fmt.Sprintf("has %d questions, want %d", len(s.Questions), QuestionCount),
		}
	}

	ids := make(map[int]bool, len(s.Questions))
	for _, q := range s.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return &ValidationError{Field: "questions", Message: fmt.Sprintf("question %d has no text", q.ID)}
		}
		if !q.Type.Valid() {
			return &ValidationError{Field: "questions", Message: fmt.Sprintf("question %d has unknown type %q", q.ID, q.Type)}
		}
		if ids[q.ID] {
			return &ValidationError{Field: "questions", Message: fmt.Sprintf("duplicate id %d", q.ID)}
		}
		ids[q.ID] = true
	}

	counts := s.CountByType()
	for _, t := range Types {
		if counts[t] != Composition[t] {
			return &ValidationError{
				Field:   "questions",
				Message: fmt.Sprintf("has %d %s questions, want %d", counts[t], t, Composition[t]),
			}
		}
	}

	if n := len(s.Glossary); n < MinGlossary || n > MaxGlossary {
		return &ValidationError{
			Field:   "glossary",
			Message: fmt.Sprintf("has %d entries, want %d to %d", n, MinGlossary, MaxGlossary),
		}
	}

	return nil
}
