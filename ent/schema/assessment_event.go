package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a completed reading assessment.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID grouping the answers of one sitting"),
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			NotEmpty(),
		field.String("story_title").
			Default(""),
		field.Int("score_literal").
			Default(0),
		field.Int("score_inferential").
			Default(0),
		field.Int("score_evaluative").
			Default(0),
		field.Int("score_total").
			Default(0),
		field.Int("duration_secs").
			Default(0).
			Comment("From story upload to quiz completion"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_name", "first_name"),
	}
}
