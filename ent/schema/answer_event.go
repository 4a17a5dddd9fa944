package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one resolved question within a level.
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
			Comment("Links to SessionEvent"),
		field.String("level_id").
			Comment("Level the question belongs to"),
		field.Int("question_index").
			Comment("Zero-based position in the level"),
		field.String("question_text").
			Comment("The question shown"),
		field.Int("correct_answer"),
		field.Int("chosen").
			Comment("Picked choice, -999 when the timer ran out"),
		field.Bool("correct"),
		field.Bool("timed_out"),
		field.Int("time_left").
			Comment("Whole seconds left on the countdown"),
		field.Int("points").
			Comment("Points awarded after avatar modifiers"),
		field.Int("streak").
			Comment("Streak after this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

func (AnswerEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "answer_events"},
	}
}
