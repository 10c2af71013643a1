package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/story"
)

func results(correct func(q story.Question) bool) []quiz.Result {
	var out []quiz.Result
	for _, q := range story.Sample().Questions {
		out = append(out, quiz.Result{Question: q, IsCorrect: correct(q)})
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		correct func(q story.Question) bool
		want    UserScore
	}{
		{"all correct", func(story.Question) bool { return true }, UserScore{4, 4, 2, 10}},
		{"none correct", func(story.Question) bool { return false }, UserScore{}},
		{"evaluative only", func(q story.Question) bool { return q.Type == story.Evaluative }, UserScore{0, 0, 2, 2}},
		{"question 7 wrong", func(q story.Question) bool { return q.ID != 7 }, UserScore{4, 4, 1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(results(tt.correct)))
		})
	}
}

func TestAggregate_IgnoresPartialCredit(t *testing.T) {
	rs := results(func(story.Question) bool { return false })
	for i := range rs {
		rs[i].Score = 1
	}
	assert.Equal(t, UserScore{}, Aggregate(rs))
}

func TestAggregate_StaysWithinBounds(t *testing.T) {
	// Twice the questions cannot push a bucket over its maximum.
	rs := results(func(story.Question) bool { return true })
	rs = append(rs, rs...)
	got := Aggregate(rs)
	assert.Equal(t, Max(), got)
	assert.Equal(t, got.Literal+got.Inferential+got.Evaluative, got.Total)
}

func TestFor(t *testing.T) {
	s := UserScore{Literal: 3, Inferential: 2, Evaluative: 1, Total: 6}
	assert.Equal(t, 3, s.For(story.Literal))
	assert.Equal(t, 2, s.For(story.Inferential))
	assert.Equal(t, 1, s.For(story.Evaluative))
}
