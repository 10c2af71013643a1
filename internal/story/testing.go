package story

import "fmt"

// sampleTypes mixes the categories the way a generated quiz usually does.
var sampleTypes = []QuestionType{
	Literal, Literal, Inferential, Inferential, Literal,
	Literal, Evaluative, Inferential, Inferential, Evaluative,
}

// Sample returns a valid story for tests and offline demos. Question ids
// run from 1 to 10; id 3 is inferential and id 7 evaluative.
func Sample() *StoryData {
	s := &StoryData{
		Title:   "Le renard et la cigogne",
		Content: "Un jour, le renard invita la cigogne à dîner. Il servit la soupe dans une assiette plate.",
		Glossary: []GlossaryItem{
			{Word: "cigogne", Definition: "Grand oiseau aux longues pattes et au long bec."},
			{Word: "dîner", Definition: "Le repas du soir."},
			{Word: "plate", Definition: "Sans creux, très peu profonde."},
		},
	}
	for i, t := range sampleTypes {
		s.Questions = append(s.Questions, Question{
			ID:   i + 1,
			Text: fmt.Sprintf("Question %d ?", i+1),
			Type: t,
		})
	}
	return s
}
