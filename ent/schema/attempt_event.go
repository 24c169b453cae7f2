package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records session lifecycle transitions for the history
// log: start, resume, rest, expiry, submission, restart.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events of one attempt"),
		field.String("action").
			NotEmpty().
			Comment("start, resume, rest_start, rest_end, time_up, submit, restart"),
		field.Int("answered").
			Default(0).
			Comment("Answered count at the time of the event"),
		field.Int("elapsed_secs").
			Default(0).
			Comment("Clock reading at the time of the event"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
