package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultRecord is one finished, graded attempt. Results are append-only
// and survive snapshot clearing, so past scores stay browsable.
type ResultRecord struct {
	ent.Schema
}

func (ResultRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the attempt that produced this result"),
		field.String("set_name").
			NotEmpty().
			Comment("Question set the attempt was taken on"),
		field.String("taker_name").
			Default("").
			Comment("Optional self-reported name"),
		field.String("taker_age").
			Default("").
			Comment("Optional self-reported age, empty when omitted"),
		field.String("taker_location").
			Default("").
			Comment("Optional self-reported location"),
		field.Int("raw_score").
			Comment("Correct answers"),
		field.Int("total_questions"),
		field.Int("iq_index").
			Comment("Derived index score"),
		field.String("classification").
			NotEmpty(),
		field.Int("percentile"),
		field.Int("accuracy_percent"),
		field.Int("time_spent_secs"),
		field.Bool("expired").
			Default(false).
			Comment("Whether the clock ran out before submission"),
		field.JSON("categories", map[string]any{}).
			Optional().
			Comment("Per-kind correct/total breakdown"),
		field.JSON("answers", []map[string]any{}).
			Optional().
			Comment("Per-question selection audit trail"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ResultRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
		index.Fields("session_id"),
	}
}
