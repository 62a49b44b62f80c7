// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ignaciourbina/quizview/ent/quizrecord"
)

// QuizRecord is the model entity for the QuizRecord schema.
type QuizRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at import time
	UID string `json:"uid,omitempty"`
	// Base name of the imported file
	Source string `json:"source,omitempty"`
	// Display title derived from the source name
	Title string `json:"title,omitempty"`
	// Number of valid questions in the quiz
	QuestionCount int `json:"question_count,omitempty"`
	// Question count per type code
	TypeCounts map[string]int `json:"type_counts,omitempty"`
	// Parsed quiz model as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// Parser diagnostics recorded at import time
	Diagnostics []string `json:"diagnostics,omitempty"`
	// When the quiz was imported
	ImportedAt   time.Time `json:"imported_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizrecord.FieldTypeCounts, quizrecord.FieldData, quizrecord.FieldDiagnostics:
			values[i] = new([]byte)
		case quizrecord.FieldID, quizrecord.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case quizrecord.FieldUID, quizrecord.FieldSource, quizrecord.FieldTitle:
			values[i] = new(sql.NullString)
		case quizrecord.FieldImportedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizRecord fields.
func (_m *QuizRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizrecord.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case quizrecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case quizrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case quizrecord.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case quizrecord.FieldTypeCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field type_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TypeCounts); err != nil {
					return fmt.Errorf("unmarshal field type_counts: %w", err)
				}
			}
		case quizrecord.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case quizrecord.FieldDiagnostics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Diagnostics); err != nil {
					return fmt.Errorf("unmarshal field diagnostics: %w", err)
				}
			}
		case quizrecord.FieldImportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field imported_at", values[i])
			} else if value.Valid {
				_m.ImportedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizRecord.
// This includes values selected through modifiers, order, etc.
func (_m *QuizRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizRecord.
// Note that you need to call QuizRecord.Unwrap() before calling this method if this QuizRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizRecord) Update() *QuizRecordUpdateOne {
	return NewQuizRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizRecord) Unwrap() *QuizRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizRecord) String() string {
	var builder strings.Builder
	builder.WriteString("QuizRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("type_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypeCounts))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("diagnostics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Diagnostics))
	builder.WriteString(", ")
	builder.WriteString("imported_at=")
	builder.WriteString(_m.ImportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizRecords is a parsable slice of QuizRecord.
type QuizRecords []*QuizRecord
