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
	"github.com/ignaciourbina/quizview/ent/predicate"
	"github.com/ignaciourbina/quizview/ent/quizrecord"
)

// QuizRecordUpdate is the builder for updating QuizRecord entities.
type QuizRecordUpdate struct {
	config
	hooks    []Hook
	mutation *QuizRecordMutation
}

// Where appends a list predicates to the QuizRecordUpdate builder.
func (_u *QuizRecordUpdate) Where(ps ...predicate.QuizRecord) *QuizRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *QuizRecordUpdate) SetSource(v string) *QuizRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizRecordUpdate) SetNillableSource(v *string) *QuizRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuizRecordUpdate) SetTitle(v string) *QuizRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuizRecordUpdate) SetNillableTitle(v *string) *QuizRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizRecordUpdate) SetQuestionCount(v int) *QuizRecordUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizRecordUpdate) SetNillableQuestionCount(v *int) *QuizRecordUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizRecordUpdate) AddQuestionCount(v int) *QuizRecordUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTypeCounts sets the "type_counts" field.
func (_u *QuizRecordUpdate) SetTypeCounts(v map[string]int) *QuizRecordUpdate {
	_u.mutation.SetTypeCounts(v)
	return _u
}

// ClearTypeCounts clears the value of the "type_counts" field.
func (_u *QuizRecordUpdate) ClearTypeCounts() *QuizRecordUpdate {
	_u.mutation.ClearTypeCounts()
	return _u
}

// SetData sets the "data" field.
func (_u *QuizRecordUpdate) SetData(v map[string]interface{}) *QuizRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *QuizRecordUpdate) SetDiagnostics(v []string) *QuizRecordUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *QuizRecordUpdate) AppendDiagnostics(v []string) *QuizRecordUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *QuizRecordUpdate) ClearDiagnostics() *QuizRecordUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// Mutation returns the QuizRecordMutation object of the builder.
func (_u *QuizRecordUpdate) Mutation() *QuizRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizRecordUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := quizrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QuizRecord.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizrecord.Table, quizrecord.Columns, sqlgraph.NewFieldSpec(quizrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quizrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizrecord.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizrecord.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TypeCounts(); ok {
		_spec.SetField(quizrecord.FieldTypeCounts, field.TypeJSON, value)
	}
	if _u.mutation.TypeCountsCleared() {
		_spec.ClearField(quizrecord.FieldTypeCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(quizrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(quizrecord.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizrecord.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(quizrecord.FieldDiagnostics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizRecordUpdateOne is the builder for updating a single QuizRecord entity.
type QuizRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizRecordMutation
}

// SetSource sets the "source" field.
func (_u *QuizRecordUpdateOne) SetSource(v string) *QuizRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizRecordUpdateOne) SetNillableSource(v *string) *QuizRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuizRecordUpdateOne) SetTitle(v string) *QuizRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuizRecordUpdateOne) SetNillableTitle(v *string) *QuizRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizRecordUpdateOne) SetQuestionCount(v int) *QuizRecordUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizRecordUpdateOne) SetNillableQuestionCount(v *int) *QuizRecordUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizRecordUpdateOne) AddQuestionCount(v int) *QuizRecordUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTypeCounts sets the "type_counts" field.
func (_u *QuizRecordUpdateOne) SetTypeCounts(v map[string]int) *QuizRecordUpdateOne {
	_u.mutation.SetTypeCounts(v)
	return _u
}

// ClearTypeCounts clears the value of the "type_counts" field.
func (_u *QuizRecordUpdateOne) ClearTypeCounts() *QuizRecordUpdateOne {
	_u.mutation.ClearTypeCounts()
	return _u
}

// SetData sets the "data" field.
func (_u *QuizRecordUpdateOne) SetData(v map[string]interface{}) *QuizRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *QuizRecordUpdateOne) SetDiagnostics(v []string) *QuizRecordUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *QuizRecordUpdateOne) AppendDiagnostics(v []string) *QuizRecordUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *QuizRecordUpdateOne) ClearDiagnostics() *QuizRecordUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// Mutation returns the QuizRecordMutation object of the builder.
func (_u *QuizRecordUpdateOne) Mutation() *QuizRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizRecordUpdate builder.
func (_u *QuizRecordUpdateOne) Where(ps ...predicate.QuizRecord) *QuizRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizRecordUpdateOne) Select(field string, fields ...string) *QuizRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizRecord entity.
func (_u *QuizRecordUpdateOne) Save(ctx context.Context) (*QuizRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizRecordUpdateOne) SaveX(ctx context.Context) *QuizRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := quizrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QuizRecord.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizRecordUpdateOne) sqlSave(ctx context.Context) (_node *QuizRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizrecord.Table, quizrecord.Columns, sqlgraph.NewFieldSpec(quizrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizrecord.FieldID)
		for _, f := range fields {
			if !quizrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizrecord.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quizrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizrecord.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizrecord.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TypeCounts(); ok {
		_spec.SetField(quizrecord.FieldTypeCounts, field.TypeJSON, value)
	}
	if _u.mutation.TypeCountsCleared() {
		_spec.ClearField(quizrecord.FieldTypeCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(quizrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(quizrecord.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizrecord.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(quizrecord.FieldDiagnostics, field.TypeJSON)
	}
	_node = &QuizRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
