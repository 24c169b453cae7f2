// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_secs", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_action",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ResultRecordsColumns holds the columns for the "result_records" table.
	ResultRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "set_name", Type: field.TypeString},
		{Name: "taker_name", Type: field.TypeString, Default: ""},
		{Name: "taker_age", Type: field.TypeString, Default: ""},
		{Name: "taker_location", Type: field.TypeString, Default: ""},
		{Name: "raw_score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "iq_index", Type: field.TypeInt},
		{Name: "classification", Type: field.TypeString},
		{Name: "percentile", Type: field.TypeInt},
		{Name: "accuracy_percent", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeInt},
		{Name: "expired", Type: field.TypeBool, Default: false},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// ResultRecordsTable holds the schema information for the "result_records" table.
	ResultRecordsTable = &schema.Table{
		Name:       "result_records",
		Columns:    ResultRecordsColumns,
		PrimaryKey: []*schema.Column{ResultRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultrecord_taken_at",
				Unique:  false,
				Columns: []*schema.Column{ResultRecordsColumns[16]},
			},
			{
				Name:    "resultrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResultRecordsColumns[1]},
			},
		},
	}
	// SessionSnapshotsColumns holds the columns for the "session_snapshots" table.
	SessionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SessionSnapshotsTable holds the schema information for the "session_snapshots" table.
	SessionSnapshotsTable = &schema.Table{
		Name:       "session_snapshots",
		Columns:    SessionSnapshotsColumns,
		PrimaryKey: []*schema.Column{SessionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsnapshot_key",
				Unique:  true,
				Columns: []*schema.Column{SessionSnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		ResultRecordsTable,
		SessionSnapshotsTable,
	}
)

func init() {
}
