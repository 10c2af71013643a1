// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *AssessmentEventCreate) SetFirstName(v string) *AssessmentEventCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *AssessmentEventCreate) SetLastName(v string) *AssessmentEventCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetStoryTitle sets the "story_title" field.
func (_c *AssessmentEventCreate) SetStoryTitle(v string) *AssessmentEventCreate {
	_c.mutation.SetStoryTitle(v)
	return _c
}

// SetNillableStoryTitle sets the "story_title" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableStoryTitle(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetStoryTitle(*v)
	}
	return _c
}

// SetScoreLiteral sets the "score_literal" field.
func (_c *AssessmentEventCreate) SetScoreLiteral(v int) *AssessmentEventCreate {
	_c.mutation.SetScoreLiteral(v)
	return _c
}

// SetNillableScoreLiteral sets the "score_literal" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableScoreLiteral(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetScoreLiteral(*v)
	}
	return _c
}

// SetScoreInferential sets the "score_inferential" field.
func (_c *AssessmentEventCreate) SetScoreInferential(v int) *AssessmentEventCreate {
	_c.mutation.SetScoreInferential(v)
	return _c
}

// SetNillableScoreInferential sets the "score_inferential" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableScoreInferential(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetScoreInferential(*v)
	}
	return _c
}

// SetScoreEvaluative sets the "score_evaluative" field.
func (_c *AssessmentEventCreate) SetScoreEvaluative(v int) *AssessmentEventCreate {
	_c.mutation.SetScoreEvaluative(v)
	return _c
}

// SetNillableScoreEvaluative sets the "score_evaluative" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableScoreEvaluative(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetScoreEvaluative(*v)
	}
	return _c
}

// SetScoreTotal sets the "score_total" field.
func (_c *AssessmentEventCreate) SetScoreTotal(v int) *AssessmentEventCreate {
	_c.mutation.SetScoreTotal(v)
	return _c
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableScoreTotal(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetScoreTotal(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AssessmentEventCreate) SetDurationSecs(v int) *AssessmentEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableDurationSecs(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StoryTitle(); !ok {
		v := assessmentevent.DefaultStoryTitle
		_c.mutation.SetStoryTitle(v)
	}
	if _, ok := _c.mutation.ScoreLiteral(); !ok {
		v := assessmentevent.DefaultScoreLiteral
		_c.mutation.SetScoreLiteral(v)
	}
	if _, ok := _c.mutation.ScoreInferential(); !ok {
		v := assessmentevent.DefaultScoreInferential
		_c.mutation.SetScoreInferential(v)
	}
	if _, ok := _c.mutation.ScoreEvaluative(); !ok {
		v := assessmentevent.DefaultScoreEvaluative
		_c.mutation.SetScoreEvaluative(v)
	}
	if _, ok := _c.mutation.ScoreTotal(); !ok {
		v := assessmentevent.DefaultScoreTotal
		_c.mutation.SetScoreTotal(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := assessmentevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "AssessmentEvent.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := assessmentevent.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "AssessmentEvent.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := assessmentevent.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoryTitle(); !ok {
		return &ValidationError{Name: "story_title", err: errors.New(`ent: missing required field "AssessmentEvent.story_title"`)}
	}
	if _, ok := _c.mutation.ScoreLiteral(); !ok {
		return &ValidationError{Name: "score_literal", err: errors.New(`ent: missing required field "AssessmentEvent.score_literal"`)}
	}
	if _, ok := _c.mutation.ScoreInferential(); !ok {
		return &ValidationError{Name: "score_inferential", err: errors.New(`ent: missing required field "AssessmentEvent.score_inferential"`)}
	}
	if _, ok := _c.mutation.ScoreEvaluative(); !ok {
		return &ValidationError{Name: "score_evaluative", err: errors.New(`ent: missing required field "AssessmentEvent.score_evaluative"`)}
	}
	if _, ok := _c.mutation.ScoreTotal(); !ok {
		return &ValidationError{Name: "score_total", err: errors.New(`ent: missing required field "AssessmentEvent.score_total"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "AssessmentEvent.duration_secs"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(assessmentevent.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(assessmentevent.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.StoryTitle(); ok {
		_spec.SetField(assessmentevent.FieldStoryTitle, field.TypeString, value)
		_node.StoryTitle = value
	}
	if value, ok := _c.mutation.ScoreLiteral(); ok {
		_spec.SetField(assessmentevent.FieldScoreLiteral, field.TypeInt, value)
		_node.ScoreLiteral = value
	}
	if value, ok := _c.mutation.ScoreInferential(); ok {
		_spec.SetField(assessmentevent.FieldScoreInferential, field.TypeInt, value)
		_node.ScoreInferential = value
	}
	if value, ok := _c.mutation.ScoreEvaluative(); ok {
		_spec.SetField(assessmentevent.FieldScoreEvaluative, field.TypeInt, value)
		_node.ScoreEvaluative = value
	}
	if value, ok := _c.mutation.ScoreTotal(); ok {
		_spec.SetField(assessmentevent.FieldScoreTotal, field.TypeInt, value)
		_node.ScoreTotal = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
