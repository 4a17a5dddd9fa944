package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records level lifecycle events: start, finish and abort.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping the events of one level"),
		field.String("action").
			NotEmpty().
			Comment("start, finish or abort"),
		field.String("level_id").
			NotEmpty().
			Comment("Stable level key, e.g. age_8_lvl_3"),
		field.String("avatar").
			Default("").
			Comment("Avatar played with"),
		field.Int("score").
			Default(0).
			Comment("Final score (finish and abort)"),
		field.Bool("passed").
			Default(false).
			Comment("Whether the target score was reached (finish only)"),
		field.Int("correct_count").
			Default(0),
		field.Int("total_questions").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

func (SessionEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_events"},
	}
}
