// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sthiel/mentiq/ent/predicate"
	"github.com/sthiel/mentiq/ent/resultrecord"
)

// ResultRecordUpdate is the builder for updating ResultRecord entities.
type ResultRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ResultRecordMutation
}

// Where appends a list predicates to the ResultRecordUpdate builder.
func (_u *ResultRecordUpdate) Where(ps ...predicate.ResultRecord) *ResultRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultRecordUpdate) SetSessionID(v string) *ResultRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableSessionID(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSetName sets the "set_name" field.
func (_u *ResultRecordUpdate) SetSetName(v string) *ResultRecordUpdate {
	_u.mutation.SetSetName(v)
	return _u
}

// SetNillableSetName sets the "set_name" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableSetName(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetSetName(*v)
	}
	return _u
}

// SetTakerName sets the "taker_name" field.
func (_u *ResultRecordUpdate) SetTakerName(v string) *ResultRecordUpdate {
	_u.mutation.SetTakerName(v)
	return _u
}

// SetNillableTakerName sets the "taker_name" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTakerName(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetTakerName(*v)
	}
	return _u
}

// SetTakerAge sets the "taker_age" field.
func (_u *ResultRecordUpdate) SetTakerAge(v string) *ResultRecordUpdate {
	_u.mutation.SetTakerAge(v)
	return _u
}

// SetNillableTakerAge sets the "taker_age" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTakerAge(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetTakerAge(*v)
	}
	return _u
}

// SetTakerLocation sets the "taker_location" field.
func (_u *ResultRecordUpdate) SetTakerLocation(v string) *ResultRecordUpdate {
	_u.mutation.SetTakerLocation(v)
	return _u
}

// SetNillableTakerLocation sets the "taker_location" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTakerLocation(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetTakerLocation(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *ResultRecordUpdate) SetRawScore(v int) *ResultRecordUpdate {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableRawScore(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *ResultRecordUpdate) AddRawScore(v int) *ResultRecordUpdate {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultRecordUpdate) SetTotalQuestions(v int) *ResultRecordUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTotalQuestions(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultRecordUpdate) AddTotalQuestions(v int) *ResultRecordUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetIqIndex sets the "iq_index" field.
func (_u *ResultRecordUpdate) SetIqIndex(v int) *ResultRecordUpdate {
	_u.mutation.ResetIqIndex()
	_u.mutation.SetIqIndex(v)
	return _u
}

// SetNillableIqIndex sets the "iq_index" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableIqIndex(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetIqIndex(*v)
	}
	return _u
}

// AddIqIndex adds value to the "iq_index" field.
func (_u *ResultRecordUpdate) AddIqIndex(v int) *ResultRecordUpdate {
	_u.mutation.AddIqIndex(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ResultRecordUpdate) SetClassification(v string) *ResultRecordUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableClassification(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetPercentile sets the "percentile" field.
func (_u *ResultRecordUpdate) SetPercentile(v int) *ResultRecordUpdate {
	_u.mutation.ResetPercentile()
	_u.mutation.SetPercentile(v)
	return _u
}

// SetNillablePercentile sets the "percentile" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillablePercentile(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetPercentile(*v)
	}
	return _u
}

// AddPercentile adds value to the "percentile" field.
func (_u *ResultRecordUpdate) AddPercentile(v int) *ResultRecordUpdate {
	_u.mutation.AddPercentile(v)
	return _u
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_u *ResultRecordUpdate) SetAccuracyPercent(v int) *ResultRecordUpdate {
	_u.mutation.ResetAccuracyPercent()
	_u.mutation.SetAccuracyPercent(v)
	return _u
}

// SetNillableAccuracyPercent sets the "accuracy_percent" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableAccuracyPercent(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetAccuracyPercent(*v)
	}
	return _u
}

// AddAccuracyPercent adds value to the "accuracy_percent" field.
func (_u *ResultRecordUpdate) AddAccuracyPercent(v int) *ResultRecordUpdate {
	_u.mutation.AddAccuracyPercent(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultRecordUpdate) SetTimeSpentSecs(v int) *ResultRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTimeSpentSecs(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultRecordUpdate) AddTimeSpentSecs(v int) *ResultRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExpired sets the "expired" field.
func (_u *ResultRecordUpdate) SetExpired(v bool) *ResultRecordUpdate {
	_u.mutation.SetExpired(v)
	return _u
}

// SetNillableExpired sets the "expired" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableExpired(v *bool) *ResultRecordUpdate {
	if v != nil {
		_u.SetExpired(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ResultRecordUpdate) SetCategories(v map[string]interface{}) *ResultRecordUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ResultRecordUpdate) ClearCategories() *ResultRecordUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ResultRecordUpdate) SetAnswers(v []map[string]interface{}) *ResultRecordUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ResultRecordUpdate) AppendAnswers(v []map[string]interface{}) *ResultRecordUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ResultRecordUpdate) ClearAnswers() *ResultRecordUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_u *ResultRecordUpdate) Mutation() *ResultRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetName(); ok {
		if err := resultrecord.SetNameValidator(v); err != nil {
			return &ValidationError{Name: "set_name", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.set_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := resultrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultrecord.Table, resultrecord.Columns, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetName(); ok {
		_spec.SetField(resultrecord.FieldSetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerName(); ok {
		_spec.SetField(resultrecord.FieldTakerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerAge(); ok {
		_spec.SetField(resultrecord.FieldTakerAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerLocation(); ok {
		_spec.SetField(resultrecord.FieldTakerLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(resultrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(resultrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IqIndex(); ok {
		_spec.SetField(resultrecord.FieldIqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIqIndex(); ok {
		_spec.AddField(resultrecord.FieldIqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(resultrecord.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentile(); ok {
		_spec.SetField(resultrecord.FieldPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentile(); ok {
		_spec.AddField(resultrecord.FieldPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercent(); ok {
		_spec.SetField(resultrecord.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercent(); ok {
		_spec.AddField(resultrecord.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expired(); ok {
		_spec.SetField(resultrecord.FieldExpired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(resultrecord.FieldCategories, field.TypeJSON, value)
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(resultrecord.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(resultrecord.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultrecord.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(resultrecord.FieldAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultRecordUpdateOne is the builder for updating a single ResultRecord entity.
type ResultRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResultRecordUpdateOne) SetSessionID(v string) *ResultRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableSessionID(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSetName sets the "set_name" field.
func (_u *ResultRecordUpdateOne) SetSetName(v string) *ResultRecordUpdateOne {
	_u.mutation.SetSetName(v)
	return _u
}

// SetNillableSetName sets the "set_name" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableSetName(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetSetName(*v)
	}
	return _u
}

// SetTakerName sets the "taker_name" field.
func (_u *ResultRecordUpdateOne) SetTakerName(v string) *ResultRecordUpdateOne {
	_u.mutation.SetTakerName(v)
	return _u
}

// SetNillableTakerName sets the "taker_name" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTakerName(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTakerName(*v)
	}
	return _u
}

// SetTakerAge sets the "taker_age" field.
func (_u *ResultRecordUpdateOne) SetTakerAge(v string) *ResultRecordUpdateOne {
	_u.mutation.SetTakerAge(v)
	return _u
}

// SetNillableTakerAge sets the "taker_age" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTakerAge(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTakerAge(*v)
	}
	return _u
}

// SetTakerLocation sets the "taker_location" field.
func (_u *ResultRecordUpdateOne) SetTakerLocation(v string) *ResultRecordUpdateOne {
	_u.mutation.SetTakerLocation(v)
	return _u
}

// SetNillableTakerLocation sets the "taker_location" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTakerLocation(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTakerLocation(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *ResultRecordUpdateOne) SetRawScore(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableRawScore(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *ResultRecordUpdateOne) AddRawScore(v int) *ResultRecordUpdateOne {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultRecordUpdateOne) SetTotalQuestions(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTotalQuestions(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultRecordUpdateOne) AddTotalQuestions(v int) *ResultRecordUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetIqIndex sets the "iq_index" field.
func (_u *ResultRecordUpdateOne) SetIqIndex(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetIqIndex()
	_u.mutation.SetIqIndex(v)
	return _u
}

// SetNillableIqIndex sets the "iq_index" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableIqIndex(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetIqIndex(*v)
	}
	return _u
}

// AddIqIndex adds value to the "iq_index" field.
func (_u *ResultRecordUpdateOne) AddIqIndex(v int) *ResultRecordUpdateOne {
	_u.mutation.AddIqIndex(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ResultRecordUpdateOne) SetClassification(v string) *ResultRecordUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableClassification(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetPercentile sets the "percentile" field.
func (_u *ResultRecordUpdateOne) SetPercentile(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetPercentile()
	_u.mutation.SetPercentile(v)
	return _u
}

// SetNillablePercentile sets the "percentile" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillablePercentile(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetPercentile(*v)
	}
	return _u
}

// AddPercentile adds value to the "percentile" field.
func (_u *ResultRecordUpdateOne) AddPercentile(v int) *ResultRecordUpdateOne {
	_u.mutation.AddPercentile(v)
	return _u
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_u *ResultRecordUpdateOne) SetAccuracyPercent(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetAccuracyPercent()
	_u.mutation.SetAccuracyPercent(v)
	return _u
}

// SetNillableAccuracyPercent sets the "accuracy_percent" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableAccuracyPercent(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetAccuracyPercent(*v)
	}
	return _u
}

// AddAccuracyPercent adds value to the "accuracy_percent" field.
func (_u *ResultRecordUpdateOne) AddAccuracyPercent(v int) *ResultRecordUpdateOne {
	_u.mutation.AddAccuracyPercent(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultRecordUpdateOne) SetTimeSpentSecs(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTimeSpentSecs(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultRecordUpdateOne) AddTimeSpentSecs(v int) *ResultRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExpired sets the "expired" field.
func (_u *ResultRecordUpdateOne) SetExpired(v bool) *ResultRecordUpdateOne {
	_u.mutation.SetExpired(v)
	return _u
}

// SetNillableExpired sets the "expired" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableExpired(v *bool) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetExpired(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ResultRecordUpdateOne) SetCategories(v map[string]interface{}) *ResultRecordUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ResultRecordUpdateOne) ClearCategories() *ResultRecordUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ResultRecordUpdateOne) SetAnswers(v []map[string]interface{}) *ResultRecordUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ResultRecordUpdateOne) AppendAnswers(v []map[string]interface{}) *ResultRecordUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ResultRecordUpdateOne) ClearAnswers() *ResultRecordUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_u *ResultRecordUpdateOne) Mutation() *ResultRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultRecordUpdate builder.
func (_u *ResultRecordUpdateOne) Where(ps ...predicate.ResultRecord) *ResultRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultRecordUpdateOne) Select(field string, fields ...string) *ResultRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultRecord entity.
func (_u *ResultRecordUpdateOne) Save(ctx context.Context) (*ResultRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultRecordUpdateOne) SaveX(ctx context.Context) *ResultRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetName(); ok {
		if err := resultrecord.SetNameValidator(v); err != nil {
			return &ValidationError{Name: "set_name", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.set_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := resultrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultRecordUpdateOne) sqlSave(ctx context.Context) (_node *ResultRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultrecord.Table, resultrecord.Columns, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultrecord.FieldID)
		for _, f := range fields {
			if !resultrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetName(); ok {
		_spec.SetField(resultrecord.FieldSetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerName(); ok {
		_spec.SetField(resultrecord.FieldTakerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerAge(); ok {
		_spec.SetField(resultrecord.FieldTakerAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakerLocation(); ok {
		_spec.SetField(resultrecord.FieldTakerLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(resultrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(resultrecord.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IqIndex(); ok {
		_spec.SetField(resultrecord.FieldIqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIqIndex(); ok {
		_spec.AddField(resultrecord.FieldIqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(resultrecord.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentile(); ok {
		_spec.SetField(resultrecord.FieldPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentile(); ok {
		_spec.AddField(resultrecord.FieldPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercent(); ok {
		_spec.SetField(resultrecord.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercent(); ok {
		_spec.AddField(resultrecord.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expired(); ok {
		_spec.SetField(resultrecord.FieldExpired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(resultrecord.FieldCategories, field.TypeJSON, value)
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(resultrecord.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(resultrecord.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultrecord.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(resultrecord.FieldAnswers, field.TypeJSON)
	}
	_node = &ResultRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
