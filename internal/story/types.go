// Package story holds the reading text and quiz produced from an uploaded
// page, and the structural rules every generated story must satisfy.
package story

// QuestionType is the comprehension category of a question.
type QuestionType string

const (
	Literal     QuestionType = "LITERAL"
	Inferential QuestionType = "INFERENTIAL"
	Evaluative  QuestionType = "EVALUATIVE"
)

// Types lists the question types in display and report order.
var Types = []QuestionType{Literal, Inferential, Evaluative}

// Composition is the exact number of questions required per type.
var Composition = map[QuestionType]int{
	Literal:     4,
	Inferential: 4,
	Evaluative:  2,
}

const (
	QuestionCount = 10
	MinGlossary   = 3
	MaxGlossary   = 6
)

// Valid reports whether t is one of the known types.
func (t QuestionType) Valid() bool {
	_, ok := Composition[t]
	return ok
}

// Label returns the French display name of the type.
func (t QuestionType) Label() string {
	switch t {
	case Literal:
		return "Littéral"
	case Inferential:
		return "Inférentiel"
	case Evaluative:
		return "Évaluatif"
	default:
		return string(t)
	}
}

// Question is one comprehension question. IDs are unique within a story.
type Question struct {
	ID   int          `json:"id"`
	Text string       `json:"text"`
	Type QuestionType `json:"type"`
}

// GlossaryItem explains a word a young reader may not know.
type GlossaryItem struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// StoryData is the transcribed text with its glossary and quiz. It is
// created once per assessment and not modified afterwards.
type StoryData struct {
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Glossary  []GlossaryItem `json:"glossary"`
	Questions []Question     `json:"questions"`
}

// Question returns the question with the given id.
func (s *StoryData) Question(id int) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// CountByType tallies questions per type.
func (s *StoryData) CountByType() map[QuestionType]int {
	counts := make(map[QuestionType]int, len(Types))
	for _, q := range s.Questions {
		counts[q.Type]++
	}
	return counts
}
