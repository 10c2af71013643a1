// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/assessmentevent"
	"github.com/abhisek/lectio/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AssessmentEventUpdate) SetFirstName(v string) *AssessmentEventUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableFirstName(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AssessmentEventUpdate) SetLastName(v string) *AssessmentEventUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableLastName(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetStoryTitle sets the "story_title" field.
func (_u *AssessmentEventUpdate) SetStoryTitle(v string) *AssessmentEventUpdate {
	_u.mutation.SetStoryTitle(v)
	return _u
}

// SetNillableStoryTitle sets the "story_title" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableStoryTitle(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetStoryTitle(*v)
	}
	return _u
}

// SetScoreLiteral sets the "score_literal" field.
func (_u *AssessmentEventUpdate) SetScoreLiteral(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScoreLiteral()
	_u.mutation.SetScoreLiteral(v)
	return _u
}

// SetNillableScoreLiteral sets the "score_literal" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScoreLiteral(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScoreLiteral(*v)
	}
	return _u
}

// AddScoreLiteral adds value to the "score_literal" field.
func (_u *AssessmentEventUpdate) AddScoreLiteral(v int) *AssessmentEventUpdate {
	_u.mutation.AddScoreLiteral(v)
	return _u
}

// SetScoreInferential sets the "score_inferential" field.
func (_u *AssessmentEventUpdate) SetScoreInferential(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScoreInferential()
	_u.mutation.SetScoreInferential(v)
	return _u
}

// SetNillableScoreInferential sets the "score_inferential" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScoreInferential(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScoreInferential(*v)
	}
	return _u
}

// AddScoreInferential adds value to the "score_inferential" field.
func (_u *AssessmentEventUpdate) AddScoreInferential(v int) *AssessmentEventUpdate {
	_u.mutation.AddScoreInferential(v)
	return _u
}

// SetScoreEvaluative sets the "score_evaluative" field.
func (_u *AssessmentEventUpdate) SetScoreEvaluative(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScoreEvaluative()
	_u.mutation.SetScoreEvaluative(v)
	return _u
}

// SetNillableScoreEvaluative sets the "score_evaluative" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScoreEvaluative(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScoreEvaluative(*v)
	}
	return _u
}

// AddScoreEvaluative adds value to the "score_evaluative" field.
func (_u *AssessmentEventUpdate) AddScoreEvaluative(v int) *AssessmentEventUpdate {
	_u.mutation.AddScoreEvaluative(v)
	return _u
}

// SetScoreTotal sets the "score_total" field.
func (_u *AssessmentEventUpdate) SetScoreTotal(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScoreTotal()
	_u.mutation.SetScoreTotal(v)
	return _u
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScoreTotal(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScoreTotal(*v)
	}
	return _u
}

// AddScoreTotal adds value to the "score_total" field.
func (_u *AssessmentEventUpdate) AddScoreTotal(v int) *AssessmentEventUpdate {
	_u.mutation.AddScoreTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdate) SetDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationSecs(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdate) AddDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := assessmentevent.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := assessmentevent.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(assessmentevent.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(assessmentevent.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryTitle(); ok {
		_spec.SetField(assessmentevent.FieldStoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreLiteral(); ok {
		_spec.SetField(assessmentevent.FieldScoreLiteral, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreLiteral(); ok {
		_spec.AddField(assessmentevent.FieldScoreLiteral, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreInferential(); ok {
		_spec.SetField(assessmentevent.FieldScoreInferential, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreInferential(); ok {
		_spec.AddField(assessmentevent.FieldScoreInferential, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreEvaluative(); ok {
		_spec.SetField(assessmentevent.FieldScoreEvaluative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreEvaluative(); ok {
		_spec.AddField(assessmentevent.FieldScoreEvaluative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreTotal(); ok {
		_spec.SetField(assessmentevent.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreTotal(); ok {
		_spec.AddField(assessmentevent.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AssessmentEventUpdateOne) SetFirstName(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableFirstName(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AssessmentEventUpdateOne) SetLastName(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableLastName(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetStoryTitle sets the "story_title" field.
func (_u *AssessmentEventUpdateOne) SetStoryTitle(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetStoryTitle(v)
	return _u
}

// SetNillableStoryTitle sets the "story_title" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableStoryTitle(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetStoryTitle(*v)
	}
	return _u
}

// SetScoreLiteral sets the "score_literal" field.
func (_u *AssessmentEventUpdateOne) SetScoreLiteral(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScoreLiteral()
	_u.mutation.SetScoreLiteral(v)
	return _u
}

// SetNillableScoreLiteral sets the "score_literal" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScoreLiteral(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScoreLiteral(*v)
	}
	return _u
}

// AddScoreLiteral adds value to the "score_literal" field.
func (_u *AssessmentEventUpdateOne) AddScoreLiteral(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScoreLiteral(v)
	return _u
}

// SetScoreInferential sets the "score_inferential" field.
func (_u *AssessmentEventUpdateOne) SetScoreInferential(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScoreInferential()
	_u.mutation.SetScoreInferential(v)
	return _u
}

// SetNillableScoreInferential sets the "score_inferential" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScoreInferential(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScoreInferential(*v)
	}
	return _u
}

// AddScoreInferential adds value to the "score_inferential" field.
func (_u *AssessmentEventUpdateOne) AddScoreInferential(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScoreInferential(v)
	return _u
}

// SetScoreEvaluative sets the "score_evaluative" field.
func (_u *AssessmentEventUpdateOne) SetScoreEvaluative(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScoreEvaluative()
	_u.mutation.SetScoreEvaluative(v)
	return _u
}

// SetNillableScoreEvaluative sets the "score_evaluative" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScoreEvaluative(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScoreEvaluative(*v)
	}
	return _u
}

// AddScoreEvaluative adds value to the "score_evaluative" field.
func (_u *AssessmentEventUpdateOne) AddScoreEvaluative(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScoreEvaluative(v)
	return _u
}

// SetScoreTotal sets the "score_total" field.
func (_u *AssessmentEventUpdateOne) SetScoreTotal(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScoreTotal()
	_u.mutation.SetScoreTotal(v)
	return _u
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScoreTotal(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScoreTotal(*v)
	}
	return _u
}

// AddScoreTotal adds value to the "score_total" field.
func (_u *AssessmentEventUpdateOne) AddScoreTotal(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScoreTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) SetDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationSecs(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) AddDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := assessmentevent.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := assessmentevent.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(assessmentevent.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(assessmentevent.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryTitle(); ok {
		_spec.SetField(assessmentevent.FieldStoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreLiteral(); ok {
		_spec.SetField(assessmentevent.FieldScoreLiteral, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreLiteral(); ok {
		_spec.AddField(assessmentevent.FieldScoreLiteral, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreInferential(); ok {
		_spec.SetField(assessmentevent.FieldScoreInferential, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreInferential(); ok {
		_spec.AddField(assessmentevent.FieldScoreInferential, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreEvaluative(); ok {
		_spec.SetField(assessmentevent.FieldScoreEvaluative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreEvaluative(); ok {
		_spec.AddField(assessmentevent.FieldScoreEvaluative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreTotal(); ok {
		_spec.SetField(assessmentevent.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreTotal(); ok {
		_spec.AddField(assessmentevent.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
