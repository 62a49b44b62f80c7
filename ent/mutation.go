// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ignaciourbina/quizview/ent/predicate"
	"github.com/ignaciourbina/quizview/ent/quizrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQuizRecord = "QuizRecord"
)

// QuizRecordMutation represents an operation that mutates the QuizRecord nodes in the graph.
type QuizRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	uid               *string
	source            *string
	title             *string
	question_count    *int
	addquestion_count *int
	type_counts       *map[string]int
	data              *map[string]interface{}
	diagnostics       *[]string
	appenddiagnostics []string
	imported_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QuizRecord, error)
	predicates        []predicate.QuizRecord
}

var _ ent.Mutation = (*QuizRecordMutation)(nil)

// quizrecordOption allows management of the mutation configuration using functional options.
type quizrecordOption func(*QuizRecordMutation)

// newQuizRecordMutation creates new mutation for the QuizRecord entity.
func newQuizRecordMutation(c config, op Op, opts ...quizrecordOption) *QuizRecordMutation {
	m := &QuizRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizRecordID sets the ID field of the mutation.
func withQuizRecordID(id int) quizrecordOption {
	return func(m *QuizRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizRecord
		)
		m.oldValue = func(ctx context.Context) (*QuizRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizRecord sets the old QuizRecord of the mutation.
func withQuizRecord(node *QuizRecord) quizrecordOption {
	return func(m *QuizRecordMutation) {
		m.oldValue = func(context.Context) (*QuizRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *QuizRecordMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *QuizRecordMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *QuizRecordMutation) ResetUID() {
	m.uid = nil
}

// SetSource sets the "source" field.
func (m *QuizRecordMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *QuizRecordMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *QuizRecordMutation) ResetSource() {
	m.source = nil
}

// SetTitle sets the "title" field.
func (m *QuizRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuizRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *QuizRecordMutation) ResetTitle() {
	m.title = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *QuizRecordMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *QuizRecordMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *QuizRecordMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *QuizRecordMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *QuizRecordMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetTypeCounts sets the "type_counts" field.
func (m *QuizRecordMutation) SetTypeCounts(value map[string]int) {
	m.type_counts = &value
}

// TypeCounts returns the value of the "type_counts" field in the mutation.
func (m *QuizRecordMutation) TypeCounts() (r map[string]int, exists bool) {
	v := m.type_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeCounts returns the old "type_counts" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldTypeCounts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeCounts: %w", err)
	}
	return oldValue.TypeCounts, nil
}

// ClearTypeCounts clears the value of the "type_counts" field.
func (m *QuizRecordMutation) ClearTypeCounts() {
	m.type_counts = nil
	m.clearedFields[quizrecord.FieldTypeCounts] = struct{}{}
}

// TypeCountsCleared returns if the "type_counts" field was cleared in this mutation.
func (m *QuizRecordMutation) TypeCountsCleared() bool {
	_, ok := m.clearedFields[quizrecord.FieldTypeCounts]
	return ok
}

// ResetTypeCounts resets all changes to the "type_counts" field.
func (m *QuizRecordMutation) ResetTypeCounts() {
	m.type_counts = nil
	delete(m.clearedFields, quizrecord.FieldTypeCounts)
}

// SetData sets the "data" field.
func (m *QuizRecordMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *QuizRecordMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *QuizRecordMutation) ResetData() {
	m.data = nil
}

// SetDiagnostics sets the "diagnostics" field.
func (m *QuizRecordMutation) SetDiagnostics(s []string) {
	m.diagnostics = &s
	m.appenddiagnostics = nil
}

// Diagnostics returns the value of the "diagnostics" field in the mutation.
func (m *QuizRecordMutation) Diagnostics() (r []string, exists bool) {
	v := m.diagnostics
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnostics returns the old "diagnostics" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldDiagnostics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnostics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnostics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnostics: %w", err)
	}
	return oldValue.Diagnostics, nil
}

// AppendDiagnostics adds s to the "diagnostics" field.
func (m *QuizRecordMutation) AppendDiagnostics(s []string) {
	m.appenddiagnostics = append(m.appenddiagnostics, s...)
}

// AppendedDiagnostics returns the list of values that were appended to the "diagnostics" field in this mutation.
func (m *QuizRecordMutation) AppendedDiagnostics() ([]string, bool) {
	if len(m.appenddiagnostics) == 0 {
		return nil, false
	}
	return m.appenddiagnostics, true
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (m *QuizRecordMutation) ClearDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	m.clearedFields[quizrecord.FieldDiagnostics] = struct{}{}
}

// DiagnosticsCleared returns if the "diagnostics" field was cleared in this mutation.
func (m *QuizRecordMutation) DiagnosticsCleared() bool {
	_, ok := m.clearedFields[quizrecord.FieldDiagnostics]
	return ok
}

// ResetDiagnostics resets all changes to the "diagnostics" field.
func (m *QuizRecordMutation) ResetDiagnostics() {
	m.diagnostics = nil
	m.appenddiagnostics = nil
	delete(m.clearedFields, quizrecord.FieldDiagnostics)
}

// SetImportedAt sets the "imported_at" field.
func (m *QuizRecordMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *QuizRecordMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the QuizRecord entity.
// If the QuizRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizRecordMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *QuizRecordMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the QuizRecordMutation builder.
func (m *QuizRecordMutation) Where(ps ...predicate.QuizRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizRecord).
func (m *QuizRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.uid != nil {
		fields = append(fields, quizrecord.FieldUID)
	}
	if m.source != nil {
		fields = append(fields, quizrecord.FieldSource)
	}
	if m.title != nil {
		fields = append(fields, quizrecord.FieldTitle)
	}
	if m.question_count != nil {
		fields = append(fields, quizrecord.FieldQuestionCount)
	}
	if m.type_counts != nil {
		fields = append(fields, quizrecord.FieldTypeCounts)
	}
	if m.data != nil {
		fields = append(fields, quizrecord.FieldData)
	}
	if m.diagnostics != nil {
		fields = append(fields, quizrecord.FieldDiagnostics)
	}
	if m.imported_at != nil {
		fields = append(fields, quizrecord.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizrecord.FieldUID:
		return m.UID()
	case quizrecord.FieldSource:
		return m.Source()
	case quizrecord.FieldTitle:
		return m.Title()
	case quizrecord.FieldQuestionCount:
		return m.QuestionCount()
	case quizrecord.FieldTypeCounts:
		return m.TypeCounts()
	case quizrecord.FieldData:
		return m.Data()
	case quizrecord.FieldDiagnostics:
		return m.Diagnostics()
	case quizrecord.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizrecord.FieldUID:
		return m.OldUID(ctx)
	case quizrecord.FieldSource:
		return m.OldSource(ctx)
	case quizrecord.FieldTitle:
		return m.OldTitle(ctx)
	case quizrecord.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case quizrecord.FieldTypeCounts:
		return m.OldTypeCounts(ctx)
	case quizrecord.FieldData:
		return m.OldData(ctx)
	case quizrecord.FieldDiagnostics:
		return m.OldDiagnostics(ctx)
	case quizrecord.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizrecord.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case quizrecord.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case quizrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case quizrecord.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case quizrecord.FieldTypeCounts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeCounts(v)
		return nil
	case quizrecord.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case quizrecord.FieldDiagnostics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnostics(v)
		return nil
	case quizrecord.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizRecordMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_count != nil {
		fields = append(fields, quizrecord.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizrecord.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizrecord.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown QuizRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizrecord.FieldTypeCounts) {
		fields = append(fields, quizrecord.FieldTypeCounts)
	}
	if m.FieldCleared(quizrecord.FieldDiagnostics) {
		fields = append(fields, quizrecord.FieldDiagnostics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizRecordMutation) ClearField(name string) error {
	switch name {
	case quizrecord.FieldTypeCounts:
		m.ClearTypeCounts()
		return nil
	case quizrecord.FieldDiagnostics:
		m.ClearDiagnostics()
		return nil
	}
	return fmt.Errorf("unknown QuizRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizRecordMutation) ResetField(name string) error {
	switch name {
	case quizrecord.FieldUID:
		m.ResetUID()
		return nil
	case quizrecord.FieldSource:
		m.ResetSource()
		return nil
	case quizrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case quizrecord.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case quizrecord.FieldTypeCounts:
		m.ResetTypeCounts()
		return nil
	case quizrecord.FieldData:
		m.ResetData()
		return nil
	case quizrecord.FieldDiagnostics:
		m.ResetDiagnostics()
		return nil
	case quizrecord.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown QuizRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizRecord edge %s", name)
}
