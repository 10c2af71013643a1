package story

import (
	"errors"
	"testing"
)

func TestValidate_Sample(t *testing.T) {
	if err := Validate(Sample()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *StoryData)
		field  string
	}{
		{"empty content", func(s *StoryData) { s.Content = "  \n" }, "content"},
		{"nine questions", func(s *StoryData) { s.Questions = s.Questions[:9] }, "questions"},
		{"wrong composition", func(s *StoryData) { s.Questions[0].Type = Evaluative }, "questions"},
		{"unknown type", func(s *StoryData) { s.Questions[0].Type = "OPINION" }, "questions"},
		{"duplicate id", func(s *StoryData) { s.Questions[1].ID = s.Questions[0].ID }, "questions"},
		{"blank question", func(s *StoryData) { s.Questions[4].Text = "" }, "questions"},
		{"short glossary", func(s *StoryData) { s.Glossary = s.Glossary[:2] }, "glossary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sample()
			tt.mutate(s)
			err := Validate(s)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestNormalize_RenumbersDuplicateIDs(t *testing.T) {
	s := Sample()
	for i := range s.Questions {
		s.Questions[i].ID = 0
	}
	Normalize(s)

	for i, q := range s.Questions {
		if q.ID != i+1 {
			t.Fatalf("question %d has id %d, want %d", i, q.ID, i+1)
		}
	}
	if err := Validate(s); err != nil {
		t.Fatalf("expected valid after normalize, got %v", err)
	}
}

func TestNormalize_KeepsDistinctIDs(t *testing.T) {
	s := Sample()
	s.Questions[0].ID = 42
	Normalize(s)
	if s.Questions[0].ID != 42 {
		t.Fatalf("expected id 42 kept, got %d", s.Questions[0].ID)
	}
}

func TestNormalize_TypesAndGlossary(t *testing.T) {
	s := Sample()
	s.Questions[0].Type = " literal "
	s.Glossary = append(s.Glossary,
		GlossaryItem{Word: " ", Definition: "dropped"},
		GlossaryItem{Word: "renard", Definition: "Animal roux."},
		GlossaryItem{Word: "soupe", Definition: "Plat liquide."},
		GlossaryItem{Word: "assiette", Definition: "Plat pour manger."},
		GlossaryItem{Word: "bec", Definition: "Bouche de l'oiseau."},
	)
	Normalize(s)

	if s.Questions[0].Type != Literal {
		t.Fatalf("type = %q, want LITERAL", s.Questions[0].Type)
	}
	if len(s.Glossary) != MaxGlossary {
		t.Fatalf("glossary has %d entries, want %d", len(s.Glossary), MaxGlossary)
	}
	for _, g := range s.Glossary {
		if g.Word == "" {
			t.Fatal("blank glossary word kept")
		}
	}
}

func TestQuestionLookupAndLabels(t *testing.T) {
	s := Sample()
	q, ok := s.Question(7)
	if !ok || q.Type != Evaluative {
		t.Fatalf("Question(7) = %+v, %v", q, ok)
	}
	if _, ok := s.Question(99); ok {
		t.Fatal("expected missing question")
	}
	if Inferential.Label() != "Inférentiel" {
		t.Fatalf("unexpected label %q", Inferential.Label())
	}
}
