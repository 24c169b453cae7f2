// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sthiel/mentiq/ent/attemptevent"
	"github.com/sthiel/mentiq/ent/llmrequestevent"
	"github.com/sthiel/mentiq/ent/resultrecord"
	"github.com/sthiel/mentiq/ent/schema"
	"github.com/sthiel/mentiq/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[1].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescAnswered is the schema descriptor for answered field.
	attempteventDescAnswered := attempteventFields[2].Descriptor()
	// attemptevent.DefaultAnswered holds the default value on creation for the answered field.
	attemptevent.DefaultAnswered = attempteventDescAnswered.Default.(int)
	// attempteventDescElapsedSecs is the schema descriptor for elapsed_secs field.
	attempteventDescElapsedSecs := attempteventFields[3].Descriptor()
	// attemptevent.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	attemptevent.DefaultElapsedSecs = attempteventDescElapsedSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	resultrecordFields := schema.ResultRecord{}.Fields()
	_ = resultrecordFields
	// resultrecordDescSessionID is the schema descriptor for session_id field.
	resultrecordDescSessionID := resultrecordFields[0].Descriptor()
	// resultrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultrecord.SessionIDValidator = resultrecordDescSessionID.Validators[0].(func(string) error)
	// resultrecordDescSetName is the schema descriptor for set_name field.
	resultrecordDescSetName := resultrecordFields[1].Descriptor()
	// resultrecord.SetNameValidator is a validator for the "set_name" field. It is called by the builders before save.
	resultrecord.SetNameValidator = resultrecordDescSetName.Validators[0].(func(string) error)
	// resultrecordDescTakerName is the schema descriptor for taker_name field.
	resultrecordDescTakerName := resultrecordFields[2].Descriptor()
	// resultrecord.DefaultTakerName holds the default value on creation for the taker_name field.
	resultrecord.DefaultTakerName = resultrecordDescTakerName.Default.(string)
	// resultrecordDescTakerAge is the schema descriptor for taker_age field.
	resultrecordDescTakerAge := resultrecordFields[3].Descriptor()
	// resultrecord.DefaultTakerAge holds the default value on creation for the taker_age field.
	resultrecord.DefaultTakerAge = resultrecordDescTakerAge.Default.(string)
	// resultrecordDescTakerLocation is the schema descriptor for taker_location field.
	resultrecordDescTakerLocation := resultrecordFields[4].Descriptor()
	// resultrecord.DefaultTakerLocation holds the default value on creation for the taker_location field.
	resultrecord.DefaultTakerLocation = resultrecordDescTakerLocation.Default.(string)
	// resultrecordDescClassification is the schema descriptor for classification field.
	resultrecordDescClassification := resultrecordFields[8].Descriptor()
	// resultrecord.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	resultrecord.ClassificationValidator = resultrecordDescClassification.Validators[0].(func(string) error)
	// resultrecordDescExpired is the schema descriptor for expired field.
	resultrecordDescExpired := resultrecordFields[12].Descriptor()
	// resultrecord.DefaultExpired holds the default value on creation for the expired field.
	resultrecord.DefaultExpired = resultrecordDescExpired.Default.(bool)
	// resultrecordDescTakenAt is the schema descriptor for taken_at field.
	resultrecordDescTakenAt := resultrecordFields[15].Descriptor()
	// resultrecord.DefaultTakenAt holds the default value on creation for the taken_at field.
	resultrecord.DefaultTakenAt = resultrecordDescTakenAt.Default.(func() time.Time)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescKey is the schema descriptor for key field.
	sessionsnapshotDescKey := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sessionsnapshot.KeyValidator = sessionsnapshotDescKey.Validators[0].(func(string) error)
	// sessionsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	sessionsnapshotDescUpdatedAt := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionsnapshot.DefaultUpdatedAt = sessionsnapshotDescUpdatedAt.Default.(func() time.Time)
	// sessionsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionsnapshot.UpdateDefaultUpdatedAt = sessionsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
