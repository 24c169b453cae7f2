package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot holds the single resumable test state per slot key.
// Checkpoints upsert the row in place; there is never more than one
// live snapshot per key.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Snapshot slot, one per test set"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized session state"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
