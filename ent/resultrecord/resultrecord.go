// Code generated by ent, DO NOT EDIT.

package resultrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resultrecord type in the database.
	Label = "result_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSetName holds the string denoting the set_name field in the database.
	FieldSetName = "set_name"
	// FieldTakerName holds the string denoting the taker_name field in the database.
	FieldTakerName = "taker_name"
	// FieldTakerAge holds the string denoting the taker_age field in the database.
	FieldTakerAge = "taker_age"
	// FieldTakerLocation holds the string denoting the taker_location field in the database.
	FieldTakerLocation = "taker_location"
	// FieldRawScore holds the string denoting the raw_score field in the database.
	FieldRawScore = "raw_score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldIqIndex holds the string denoting the iq_index field in the database.
	FieldIqIndex = "iq_index"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldPercentile holds the string denoting the percentile field in the database.
	FieldPercentile = "percentile"
	// FieldAccuracyPercent holds the string denoting the accuracy_percent field in the database.
	FieldAccuracyPercent = "accuracy_percent"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldExpired holds the string denoting the expired field in the database.
	FieldExpired = "expired"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the resultrecord in the database.
	Table = "result_records"
)

// Columns holds all SQL columns for resultrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSetName,
	FieldTakerName,
	FieldTakerAge,
	FieldTakerLocation,
	FieldRawScore,
	FieldTotalQuestions,
	FieldIqIndex,
	FieldClassification,
	FieldPercentile,
	FieldAccuracyPercent,
	FieldTimeSpentSecs,
	FieldExpired,
	FieldCategories,
	FieldAnswers,
	FieldTakenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SetNameValidator is a validator for the "set_name" field. It is called by the builders before save.
	SetNameValidator func(string) error
	// DefaultTakerName holds the default value on creation for the "taker_name" field.
	DefaultTakerName string
	// DefaultTakerAge holds the default value on creation for the "taker_age" field.
	DefaultTakerAge string
	// DefaultTakerLocation holds the default value on creation for the "taker_location" field.
	DefaultTakerLocation string
	// ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	ClassificationValidator func(string) error
	// DefaultExpired holds the default value on creation for the "expired" field.
	DefaultExpired bool
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the ResultRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySetName orders the results by the set_name field.
func BySetName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSetName, opts...).ToFunc()
}

// ByTakerName orders the results by the taker_name field.
func ByTakerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakerName, opts...).ToFunc()
}

// ByTakerAge orders the results by the taker_age field.
func ByTakerAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakerAge, opts...).ToFunc()
}

// ByTakerLocation orders the results by the taker_location field.
func ByTakerLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakerLocation, opts...).ToFunc()
}

// ByRawScore orders the results by the raw_score field.
func ByRawScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByIqIndex orders the results by the iq_index field.
func ByIqIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIqIndex, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByPercentile orders the results by the percentile field.
func ByPercentile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentile, opts...).ToFunc()
}

// ByAccuracyPercent orders the results by the accuracy_percent field.
func ByAccuracyPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyPercent, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByExpired orders the results by the expired field.
func ByExpired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpired, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
