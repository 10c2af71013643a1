// Package score aggregates quiz results into per-category points.
package score

import (
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/story"
)

// UserScore counts correct answers per question type. Partial credit from
// the evaluator is not counted.
type UserScore struct {
	Literal     int
	Inferential int
	Evaluative  int
	Total       int
}

// Max returns the highest reachable score: 4/4/2, 10 in total.
func Max() UserScore {
	return UserScore{
		Literal:     story.Composition[story.Literal],
		Inferential: story.Composition[story.Inferential],
		Evaluative:  story.Composition[story.Evaluative],
		Total:       story.QuestionCount,
	}
}

// Aggregate awards one point per correct result, bucketed by type.
func Aggregate(results []quiz.Result) UserScore {
	var s UserScore
	for _, r := range results {
		if !r.IsCorrect {
			continue
		}
		switch r.Question.Type {
		case story.Literal:
			s.Literal++
		case story.Inferential:
			s.Inferential++
		case story.Evaluative:
			s.Evaluative++
		}
	}
	top := Max()
	s.Literal = min(s.Literal, top.Literal)
	s.Inferential = min(s.Inferential, top.Inferential)
	s.Evaluative = min(s.Evaluative, top.Evaluative)
	s.Total = s.Literal + s.Inferential + s.Evaluative
	return s
}

// For returns the points of one type.
func (s UserScore) For(t story.QuestionType) int {
	switch t {
	case story.Literal:
		return s.Literal
	case story.Inferential:
		return s.Inferential
	case story.Evaluative:
		return s.Evaluative
	}
	return 0
}
