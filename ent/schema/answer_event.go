package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one evaluated answer within an assessment.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.Int("question_id").
			Comment("Question id within the story"),
		field.String("question_type").
			NotEmpty().
			Comment("LITERAL, INFERENTIAL or EVALUATIVE"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("student_answer").
			Default("").
			Comment("What the student typed"),
		field.Int("attempt").
			Comment("1 or 2"),
		field.String("status").
			NotEmpty().
			Comment("Status after evaluation"),
		field.Bool("correct").
			Comment("Whether the answer was judged correct"),
		field.Int("score").
			Default(0).
			Comment("Evaluator score, 0 to 2"),
		field.Text("feedback").
			Default("").
			Comment("Feedback shown to the student"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
