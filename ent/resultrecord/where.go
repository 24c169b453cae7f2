// Code generated by ent, DO NOT EDIT.

package resultrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sthiel/mentiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSessionID, v))
}

// SetName applies equality check predicate on the "set_name" field. It's identical to SetNameEQ.
func SetName(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSetName, v))
}

// TakerName applies equality check predicate on the "taker_name" field. It's identical to TakerNameEQ.
func TakerName(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerName, v))
}

// TakerAge applies equality check predicate on the "taker_age" field. It's identical to TakerAgeEQ.
func TakerAge(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerAge, v))
}

// TakerLocation applies equality check predicate on the "taker_location" field. It's identical to TakerLocationEQ.
func TakerLocation(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerLocation, v))
}

// RawScore applies equality check predicate on the "raw_score" field. It's identical to RawScoreEQ.
func RawScore(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldRawScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTotalQuestions, v))
}

// IqIndex applies equality check predicate on the "iq_index" field. It's identical to IqIndexEQ.
func IqIndex(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldIqIndex, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldClassification, v))
}

// Percentile applies equality check predicate on the "percentile" field. It's identical to PercentileEQ.
func Percentile(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldPercentile, v))
}

// AccuracyPercent applies equality check predicate on the "accuracy_percent" field. It's identical to AccuracyPercentEQ.
func AccuracyPercent(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAccuracyPercent, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// Expired applies equality check predicate on the "expired" field. It's identical to ExpiredEQ.
func Expired(v bool) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldExpired, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakenAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// SetNameEQ applies the EQ predicate on the "set_name" field.
func SetNameEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSetName, v))
}

// SetNameNEQ applies the NEQ predicate on the "set_name" field.
func SetNameNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldSetName, v))
}

// SetNameIn applies the In predicate on the "set_name" field.
func SetNameIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldSetName, vs...))
}

// SetNameNotIn applies the NotIn predicate on the "set_name" field.
func SetNameNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldSetName, vs...))
}

// SetNameGT applies the GT predicate on the "set_name" field.
func SetNameGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldSetName, v))
}

// SetNameGTE applies the GTE predicate on the "set_name" field.
func SetNameGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldSetName, v))
}

// SetNameLT applies the LT predicate on the "set_name" field.
func SetNameLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldSetName, v))
}

// SetNameLTE applies the LTE predicate on the "set_name" field.
func SetNameLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldSetName, v))
}

// SetNameContains applies the Contains predicate on the "set_name" field.
func SetNameContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldSetName, v))
}

// SetNameHasPrefix applies the HasPrefix predicate on the "set_name" field.
func SetNameHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldSetName, v))
}

// SetNameHasSuffix applies the HasSuffix predicate on the "set_name" field.
func SetNameHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldSetName, v))
}

// SetNameEqualFold applies the EqualFold predicate on the "set_name" field.
func SetNameEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldSetName, v))
}

// SetNameContainsFold applies the ContainsFold predicate on the "set_name" field.
func SetNameContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldSetName, v))
}

// TakerNameEQ applies the EQ predicate on the "taker_name" field.
func TakerNameEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerName, v))
}

// TakerNameNEQ applies the NEQ predicate on the "taker_name" field.
func TakerNameNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTakerName, v))
}

// TakerNameIn applies the In predicate on the "taker_name" field.
func TakerNameIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTakerName, vs...))
}

// TakerNameNotIn applies the NotIn predicate on the "taker_name" field.
func TakerNameNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTakerName, vs...))
}

// TakerNameGT applies the GT predicate on the "taker_name" field.
func TakerNameGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTakerName, v))
}

// TakerNameGTE applies the GTE predicate on the "taker_name" field.
func TakerNameGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTakerName, v))
}

// TakerNameLT applies the LT predicate on the "taker_name" field.
func TakerNameLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTakerName, v))
}

// TakerNameLTE applies the LTE predicate on the "taker_name" field.
func TakerNameLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTakerName, v))
}

// TakerNameContains applies the Contains predicate on the "taker_name" field.
func TakerNameContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldTakerName, v))
}

// TakerNameHasPrefix applies the HasPrefix predicate on the "taker_name" field.
func TakerNameHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldTakerName, v))
}

// TakerNameHasSuffix applies the HasSuffix predicate on the "taker_name" field.
func TakerNameHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldTakerName, v))
}

// TakerNameEqualFold applies the EqualFold predicate on the "taker_name" field.
func TakerNameEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldTakerName, v))
}

// TakerNameContainsFold applies the ContainsFold predicate on the "taker_name" field.
func TakerNameContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldTakerName, v))
}

// TakerAgeEQ applies the EQ predicate on the "taker_age" field.
func TakerAgeEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerAge, v))
}

// TakerAgeNEQ applies the NEQ predicate on the "taker_age" field.
func TakerAgeNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTakerAge, v))
}

// TakerAgeIn applies the In predicate on the "taker_age" field.
func TakerAgeIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTakerAge, vs...))
}

// TakerAgeNotIn applies the NotIn predicate on the "taker_age" field.
func TakerAgeNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTakerAge, vs...))
}

// TakerAgeGT applies the GT predicate on the "taker_age" field.
func TakerAgeGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTakerAge, v))
}

// TakerAgeGTE applies the GTE predicate on the "taker_age" field.
func TakerAgeGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTakerAge, v))
}

// TakerAgeLT applies the LT predicate on the "taker_age" field.
func TakerAgeLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTakerAge, v))
}

// TakerAgeLTE applies the LTE predicate on the "taker_age" field.
func TakerAgeLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTakerAge, v))
}

// TakerAgeContains applies the Contains predicate on the "taker_age" field.
func TakerAgeContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldTakerAge, v))
}

// TakerAgeHasPrefix applies the HasPrefix predicate on the "taker_age" field.
func TakerAgeHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldTakerAge, v))
}

// TakerAgeHasSuffix applies the HasSuffix predicate on the "taker_age" field.
func TakerAgeHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldTakerAge, v))
}

// TakerAgeEqualFold applies the EqualFold predicate on the "taker_age" field.
func TakerAgeEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldTakerAge, v))
}

// TakerAgeContainsFold applies the ContainsFold predicate on the "taker_age" field.
func TakerAgeContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldTakerAge, v))
}

// TakerLocationEQ applies the EQ predicate on the "taker_location" field.
func TakerLocationEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakerLocation, v))
}

// TakerLocationNEQ applies the NEQ predicate on the "taker_location" field.
func TakerLocationNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTakerLocation, v))
}

// TakerLocationIn applies the In predicate on the "taker_location" field.
func TakerLocationIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTakerLocation, vs...))
}

// TakerLocationNotIn applies the NotIn predicate on the "taker_location" field.
func TakerLocationNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTakerLocation, vs...))
}

// TakerLocationGT applies the GT predicate on the "taker_location" field.
func TakerLocationGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTakerLocation, v))
}

// TakerLocationGTE applies the GTE predicate on the "taker_location" field.
func TakerLocationGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTakerLocation, v))
}

// TakerLocationLT applies the LT predicate on the "taker_location" field.
func TakerLocationLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTakerLocation, v))
}

// TakerLocationLTE applies the LTE predicate on the "taker_location" field.
func TakerLocationLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTakerLocation, v))
}

// TakerLocationContains applies the Contains predicate on the "taker_location" field.
func TakerLocationContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldTakerLocation, v))
}

// TakerLocationHasPrefix applies the HasPrefix predicate on the "taker_location" field.
func TakerLocationHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldTakerLocation, v))
}

// TakerLocationHasSuffix applies the HasSuffix predicate on the "taker_location" field.
func TakerLocationHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldTakerLocation, v))
}

// TakerLocationEqualFold applies the EqualFold predicate on the "taker_location" field.
func TakerLocationEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldTakerLocation, v))
}

// TakerLocationContainsFold applies the ContainsFold predicate on the "taker_location" field.
func TakerLocationContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldTakerLocation, v))
}

// RawScoreEQ applies the EQ predicate on the "raw_score" field.
func RawScoreEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldRawScore, v))
}

// RawScoreNEQ applies the NEQ predicate on the "raw_score" field.
func RawScoreNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldRawScore, v))
}

// RawScoreIn applies the In predicate on the "raw_score" field.
func RawScoreIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldRawScore, vs...))
}

// RawScoreNotIn applies the NotIn predicate on the "raw_score" field.
func RawScoreNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldRawScore, vs...))
}

// RawScoreGT applies the GT predicate on the "raw_score" field.
func RawScoreGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldRawScore, v))
}

// RawScoreGTE applies the GTE predicate on the "raw_score" field.
func RawScoreGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldRawScore, v))
}

// RawScoreLT applies the LT predicate on the "raw_score" field.
func RawScoreLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldRawScore, v))
}

// RawScoreLTE applies the LTE predicate on the "raw_score" field.
func RawScoreLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldRawScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTotalQuestions, v))
}

// IqIndexEQ applies the EQ predicate on the "iq_index" field.
func IqIndexEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldIqIndex, v))
}

// IqIndexNEQ applies the NEQ predicate on the "iq_index" field.
func IqIndexNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldIqIndex, v))
}

// IqIndexIn applies the In predicate on the "iq_index" field.
func IqIndexIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldIqIndex, vs...))
}

// IqIndexNotIn applies the NotIn predicate on the "iq_index" field.
func IqIndexNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldIqIndex, vs...))
}

// IqIndexGT applies the GT predicate on the "iq_index" field.
func IqIndexGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldIqIndex, v))
}

// IqIndexGTE applies the GTE predicate on the "iq_index" field.
func IqIndexGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldIqIndex, v))
}

// IqIndexLT applies the LT predicate on the "iq_index" field.
func IqIndexLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldIqIndex, v))
}

// IqIndexLTE applies the LTE predicate on the "iq_index" field.
func IqIndexLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldIqIndex, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldClassification, v))
}

// PercentileEQ applies the EQ predicate on the "percentile" field.
func PercentileEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldPercentile, v))
}

// PercentileNEQ applies the NEQ predicate on the "percentile" field.
func PercentileNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldPercentile, v))
}

// PercentileIn applies the In predicate on the "percentile" field.
func PercentileIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldPercentile, vs...))
}

// PercentileNotIn applies the NotIn predicate on the "percentile" field.
func PercentileNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldPercentile, vs...))
}

// PercentileGT applies the GT predicate on the "percentile" field.
func PercentileGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldPercentile, v))
}

// PercentileGTE applies the GTE predicate on the "percentile" field.
func PercentileGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldPercentile, v))
}

// PercentileLT applies the LT predicate on the "percentile" field.
func PercentileLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldPercentile, v))
}

// PercentileLTE applies the LTE predicate on the "percentile" field.
func PercentileLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldPercentile, v))
}

// AccuracyPercentEQ applies the EQ predicate on the "accuracy_percent" field.
func AccuracyPercentEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAccuracyPercent, v))
}

// AccuracyPercentNEQ applies the NEQ predicate on the "accuracy_percent" field.
func AccuracyPercentNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldAccuracyPercent, v))
}

// AccuracyPercentIn applies the In predicate on the "accuracy_percent" field.
func AccuracyPercentIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldAccuracyPercent, vs...))
}

// AccuracyPercentNotIn applies the NotIn predicate on the "accuracy_percent" field.
func AccuracyPercentNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldAccuracyPercent, vs...))
}

// AccuracyPercentGT applies the GT predicate on the "accuracy_percent" field.
func AccuracyPercentGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldAccuracyPercent, v))
}

// AccuracyPercentGTE applies the GTE predicate on the "accuracy_percent" field.
func AccuracyPercentGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldAccuracyPercent, v))
}

// AccuracyPercentLT applies the LT predicate on the "accuracy_percent" field.
func AccuracyPercentLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldAccuracyPercent, v))
}

// AccuracyPercentLTE applies the LTE predicate on the "accuracy_percent" field.
func AccuracyPercentLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldAccuracyPercent, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// ExpiredEQ applies the EQ predicate on the "expired" field.
func ExpiredEQ(v bool) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldExpired, v))
}

// ExpiredNEQ applies the NEQ predicate on the "expired" field.
func ExpiredNEQ(v bool) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldExpired, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotNull(FieldCategories))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotNull(FieldAnswers))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.NotPredicates(p))
}
