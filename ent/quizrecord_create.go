// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ignaciourbina/quizview/ent/quizrecord"
)

// QuizRecordCreate is the builder for creating a QuizRecord entity.
type QuizRecordCreate struct {
	config
	mutation *QuizRecordMutation
	hooks    []Hook
}

// SetUID sets the "uid" field.
func (_c *QuizRecordCreate) SetUID(v string) *QuizRecordCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *QuizRecordCreate) SetSource(v string) *QuizRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuizRecordCreate) SetTitle(v string) *QuizRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *QuizRecordCreate) SetQuestionCount(v int) *QuizRecordCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *QuizRecordCreate) SetNillableQuestionCount(v *int) *QuizRecordCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetTypeCounts sets the "type_counts" field.
func (_c *QuizRecordCreate) SetTypeCounts(v map[string]int) *QuizRecordCreate {
	_c.mutation.SetTypeCounts(v)
	return _c
}

// SetData sets the "data" field.
func (_c *QuizRecordCreate) SetData(v map[string]interface{}) *QuizRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *QuizRecordCreate) SetDiagnostics(v []string) *QuizRecordCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *QuizRecordCreate) SetImportedAt(v time.Time) *QuizRecordCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *QuizRecordCreate) SetNillableImportedAt(v *time.Time) *QuizRecordCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the QuizRecordMutation object of the builder.
func (_c *QuizRecordCreate) Mutation() *QuizRecordMutation {
	return _c.mutation
}

// Save creates the QuizRecord in the database.
func (_c *QuizRecordCreate) Save(ctx context.Context) (*QuizRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizRecordCreate) SaveX(ctx context.Context) *QuizRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizRecordCreate) defaults() {
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := quizrecord.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := quizrecord.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizRecordCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "QuizRecord.uid"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuizRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := quizrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QuizRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "QuizRecord.title"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "QuizRecord.question_count"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "QuizRecord.data"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "QuizRecord.imported_at"`)}
	}
	return nil
}

func (_c *QuizRecordCreate) sqlSave(ctx context.Context) (*QuizRecord, error) {
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

func (_c *QuizRecordCreate) createSpec() (*QuizRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizrecord.Table, sqlgraph.NewFieldSpec(quizrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(quizrecord.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(quizrecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(quizrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(quizrecord.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.TypeCounts(); ok {
		_spec.SetField(quizrecord.FieldTypeCounts, field.TypeJSON, value)
		_node.TypeCounts = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(quizrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(quizrecord.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(quizrecord.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// QuizRecordCreateBulk is the builder for creating many QuizRecord entities in bulk.
type QuizRecordCreateBulk struct {
	config
	err      error
	builders []*QuizRecordCreate
}

// Save creates the QuizRecord entities in the database.
func (_c *QuizRecordCreateBulk) Save(ctx context.Context) ([]*QuizRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizRecordMutation)
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
func (_c *QuizRecordCreateBulk) SaveX(ctx context.Context) []*QuizRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
