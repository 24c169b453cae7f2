// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sthiel/mentiq/ent/resultrecord"
)

// ResultRecord is the model entity for the ResultRecord schema.
type ResultRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the attempt that produced this result
	SessionID string `json:"session_id,omitempty"`
	// Question set the attempt was taken on
	SetName string `json:"set_name,omitempty"`
	// Optional self-reported name
	TakerName string `json:"taker_name,omitempty"`
	// Optional self-reported age, empty when omitted
	TakerAge string `json:"taker_age,omitempty"`
	// Optional self-reported location
	TakerLocation string `json:"taker_location,omitempty"`
	// Correct answers
	RawScore int `json:"raw_score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Derived index score
	IqIndex int `json:"iq_index,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification string `json:"classification,omitempty"`
	// Percentile holds the value of the "percentile" field.
	Percentile int `json:"percentile,omitempty"`
	// AccuracyPercent holds the value of the "accuracy_percent" field.
	AccuracyPercent int `json:"accuracy_percent,omitempty"`
	// TimeSpentSecs holds the value of the "time_spent_secs" field.
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// Whether the clock ran out before submission
	Expired bool `json:"expired,omitempty"`
	// Per-kind correct/total breakdown
	Categories map[string]interface{} `json:"categories,omitempty"`
	// Per-question selection audit trail
	Answers []map[string]interface{} `json:"answers,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt      time.Time `json:"taken_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultrecord.FieldCategories, resultrecord.FieldAnswers:
			values[i] = new([]byte)
		case resultrecord.FieldExpired:
			values[i] = new(sql.NullBool)
		case resultrecord.FieldID, resultrecord.FieldRawScore, resultrecord.FieldTotalQuestions, resultrecord.FieldIqIndex, resultrecord.FieldPercentile, resultrecord.FieldAccuracyPercent, resultrecord.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case resultrecord.FieldSessionID, resultrecord.FieldSetName, resultrecord.FieldTakerName, resultrecord.FieldTakerAge, resultrecord.FieldTakerLocation, resultrecord.FieldClassification:
			values[i] = new(sql.NullString)
		case resultrecord.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultRecord fields.
func (_m *ResultRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case resultrecord.FieldSetName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_name", values[i])
			} else if value.Valid {
				_m.SetName = value.String
			}
		case resultrecord.FieldTakerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field taker_name", values[i])
			} else if value.Valid {
				_m.TakerName = value.String
			}
		case resultrecord.FieldTakerAge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field taker_age", values[i])
			} else if value.Valid {
				_m.TakerAge = value.String
			}
		case resultrecord.FieldTakerLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field taker_location", values[i])
			} else if value.Valid {
				_m.TakerLocation = value.String
			}
		case resultrecord.FieldRawScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_score", values[i])
			} else if value.Valid {
				_m.RawScore = int(value.Int64)
			}
		case resultrecord.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case resultrecord.FieldIqIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iq_index", values[i])
			} else if value.Valid {
				_m.IqIndex = int(value.Int64)
			}
		case resultrecord.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = value.String
			}
		case resultrecord.FieldPercentile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentile", values[i])
			} else if value.Valid {
				_m.Percentile = int(value.Int64)
			}
		case resultrecord.FieldAccuracyPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_percent", values[i])
			} else if value.Valid {
				_m.AccuracyPercent = int(value.Int64)
			}
		case resultrecord.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case resultrecord.FieldExpired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field expired", values[i])
			} else if value.Valid {
				_m.Expired = value.Bool
			}
		case resultrecord.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case resultrecord.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case resultrecord.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ResultRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultRecord.
// Note that you need to call ResultRecord.Unwrap() before calling this method if this ResultRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultRecord) Update() *ResultRecordUpdateOne {
	return NewResultRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultRecord) Unwrap() *ResultRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ResultRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("set_name=")
	builder.WriteString(_m.SetName)
	builder.WriteString(", ")
	builder.WriteString("taker_name=")
	builder.WriteString(_m.TakerName)
	builder.WriteString(", ")
	builder.WriteString("taker_age=")
	builder.WriteString(_m.TakerAge)
	builder.WriteString(", ")
	builder.WriteString("taker_location=")
	builder.WriteString(_m.TakerLocation)
	builder.WriteString(", ")
	builder.WriteString("raw_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawScore))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("iq_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.IqIndex))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(_m.Classification)
	builder.WriteString(", ")
	builder.WriteString("percentile=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentile))
	builder.WriteString(", ")
	builder.WriteString("accuracy_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyPercent))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("expired=")
	builder.WriteString(fmt.Sprintf("%v", _m.Expired))
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResultRecords is a parsable slice of ResultRecord.
type ResultRecords []*ResultRecord
