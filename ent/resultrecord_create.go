// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sthiel/mentiq/ent/resultrecord"
)

// ResultRecordCreate is the builder for creating a ResultRecord entity.
type ResultRecordCreate struct {
	config
	mutation *ResultRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResultRecordCreate) SetSessionID(v string) *ResultRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSetName sets the "set_name" field.
func (_c *ResultRecordCreate) SetSetName(v string) *ResultRecordCreate {
	_c.mutation.SetSetName(v)
	return _c
}

// SetTakerName sets the "taker_name" field.
func (_c *ResultRecordCreate) SetTakerName(v string) *ResultRecordCreate {
	_c.mutation.SetTakerName(v)
	return _c
}

// SetNillableTakerName sets the "taker_name" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTakerName(v *string) *ResultRecordCreate {
	if v != nil {
		_c.SetTakerName(*v)
	}
	return _c
}

// SetTakerAge sets the "taker_age" field.
func (_c *ResultRecordCreate) SetTakerAge(v string) *ResultRecordCreate {
	_c.mutation.SetTakerAge(v)
	return _c
}

// SetNillableTakerAge sets the "taker_age" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTakerAge(v *string) *ResultRecordCreate {
	if v != nil {
		_c.SetTakerAge(*v)
	}
	return _c
}

// SetTakerLocation sets the "taker_location" field.
func (_c *ResultRecordCreate) SetTakerLocation(v string) *ResultRecordCreate {
	_c.mutation.SetTakerLocation(v)
	return _c
}

// SetNillableTakerLocation sets the "taker_location" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTakerLocation(v *string) *ResultRecordCreate {
	if v != nil {
		_c.SetTakerLocation(*v)
	}
	return _c
}

// SetRawScore sets the "raw_score" field.
func (_c *ResultRecordCreate) SetRawScore(v int) *ResultRecordCreate {
	_c.mutation.SetRawScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ResultRecordCreate) SetTotalQuestions(v int) *ResultRecordCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetIqIndex sets the "iq_index" field.
func (_c *ResultRecordCreate) SetIqIndex(v int) *ResultRecordCreate {
	_c.mutation.SetIqIndex(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *ResultRecordCreate) SetClassification(v string) *ResultRecordCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetPercentile sets the "percentile" field.
func (_c *ResultRecordCreate) SetPercentile(v int) *ResultRecordCreate {
	_c.mutation.SetPercentile(v)
	return _c
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_c *ResultRecordCreate) SetAccuracyPercent(v int) *ResultRecordCreate {
	_c.mutation.SetAccuracyPercent(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *ResultRecordCreate) SetTimeSpentSecs(v int) *ResultRecordCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetExpired sets the "expired" field.
func (_c *ResultRecordCreate) SetExpired(v bool) *ResultRecordCreate {
	_c.mutation.SetExpired(v)
	return _c
}

// SetNillableExpired sets the "expired" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableExpired(v *bool) *ResultRecordCreate {
	if v != nil {
		_c.SetExpired(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *ResultRecordCreate) SetCategories(v map[string]interface{}) *ResultRecordCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ResultRecordCreate) SetAnswers(v []map[string]interface{}) *ResultRecordCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ResultRecordCreate) SetTakenAt(v time.Time) *ResultRecordCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTakenAt(v *time.Time) *ResultRecordCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_c *ResultRecordCreate) Mutation() *ResultRecordMutation {
	return _c.mutation
}

// Save creates the ResultRecord in the database.
func (_c *ResultRecordCreate) Save(ctx context.Context) (*ResultRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultRecordCreate) SaveX(ctx context.Context) *ResultRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultRecordCreate) defaults() {
	if _, ok := _c.mutation.TakerName(); !ok {
		v := resultrecord.DefaultTakerName
		_c.mutation.SetTakerName(v)
	}
	if _, ok := _c.mutation.TakerAge(); !ok {
		v := resultrecord.DefaultTakerAge
		_c.mutation.SetTakerAge(v)
	}
	if _, ok := _c.mutation.TakerLocation(); !ok {
		v := resultrecord.DefaultTakerLocation
		_c.mutation.SetTakerLocation(v)
	}
	if _, ok := _c.mutation.Expired(); !ok {
		v := resultrecord.DefaultExpired
		_c.mutation.SetExpired(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := resultrecord.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResultRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := resultrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SetName(); !ok {
		return &ValidationError{Name: "set_name", err: errors.New(`ent: missing required field "ResultRecord.set_name"`)}
	}
	if v, ok := _c.mutation.SetName(); ok {
		if err := resultrecord.SetNameValidator(v); err != nil {
			return &ValidationError{Name: "set_name", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.set_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakerName(); !ok {
		return &ValidationError{Name: "taker_name", err: errors.New(`ent: missing required field "ResultRecord.taker_name"`)}
	}
	if _, ok := _c.mutation.TakerAge(); !ok {
		return &ValidationError{Name: "taker_age", err: errors.New(`ent: missing required field "ResultRecord.taker_age"`)}
	}
	if _, ok := _c.mutation.TakerLocation(); !ok {
		return &ValidationError{Name: "taker_location", err: errors.New(`ent: missing required field "ResultRecord.taker_location"`)}
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		return &ValidationError{Name: "raw_score", err: errors.New(`ent: missing required field "ResultRecord.raw_score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ResultRecord.total_questions"`)}
	}
	if _, ok := _c.mutation.IqIndex(); !ok {
		return &ValidationError{Name: "iq_index", err: errors.New(`ent: missing required field "ResultRecord.iq_index"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "ResultRecord.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := resultrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Percentile(); !ok {
		return &ValidationError{Name: "percentile", err: errors.New(`ent: missing required field "ResultRecord.percentile"`)}
	}
	if _, ok := _c.mutation.AccuracyPercent(); !ok {
		return &ValidationError{Name: "accuracy_percent", err: errors.New(`ent: missing required field "ResultRecord.accuracy_percent"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "ResultRecord.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.Expired(); !ok {
		return &ValidationError{Name: "expired", err: errors.New(`ent: missing required field "ResultRecord.expired"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "ResultRecord.taken_at"`)}
	}
	return nil
}

func (_c *ResultRecordCreate) sqlSave(ctx context.Context) (*ResultRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultRecordCreate) createSpec() (*ResultRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultrecord.Table, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(resultrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SetName(); ok {
		_spec.SetField(resultrecord.FieldSetName, field.TypeString, value)
		_node.SetName = value
	}
	if value, ok := _c.mutation.TakerName(); ok {
		_spec.SetField(resultrecord.FieldTakerName, field.TypeString, value)
		_node.TakerName = value
	}
	if value, ok := _c.mutation.TakerAge(); ok {
		_spec.SetField(resultrecord.FieldTakerAge, field.TypeString, value)
		_node.TakerAge = value
	}
	if value, ok := _c.mutation.TakerLocation(); ok {
		_spec.SetField(resultrecord.FieldTakerLocation, field.TypeString, value)
		_node.TakerLocation = value
	}
	if value, ok := _c.mutation.RawScore(); ok {
		_spec.SetField(resultrecord.FieldRawScore, field.TypeInt, value)
		_node.RawScore = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.IqIndex(); ok {
		_spec.SetField(resultrecord.FieldIqIndex, field.TypeInt, value)
		_node.IqIndex = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(resultrecord.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Percentile(); ok {
		_spec.SetField(resultrecord.FieldPercentile, field.TypeInt, value)
		_node.Percentile = value
	}
	if value, ok := _c.mutation.AccuracyPercent(); ok {
		_spec.SetField(resultrecord.FieldAccuracyPercent, field.TypeInt, value)
		_node.AccuracyPercent = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultrecord.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Expired(); ok {
		_spec.SetField(resultrecord.FieldExpired, field.TypeBool, value)
		_node.Expired = value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(resultrecord.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(resultrecord.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(resultrecord.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// ResultRecordCreateBulk is the builder for creating many ResultRecord entities in bulk.
type ResultRecordCreateBulk struct {
	config
	err      error
	builders []*ResultRecordCreate
}

// Save creates the ResultRecord entities in the database.
func (_c *ResultRecordCreateBulk) Save(ctx context.Context) ([]*ResultRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultRecordCreateBulk) SaveX(ctx context.Context) []*ResultRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
