// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ignaciourbina/quizview/ent/quizrecord"
	"github.com/ignaciourbina/quizview/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	quizrecordFields := schema.QuizRecord{}.Fields()
	_ = quizrecordFields
	// quizrecordDescSource is the schema descriptor for source field.
	quizrecordDescSource := quizrecordFields[1].Descriptor()
	// quizrecord.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	quizrecord.SourceValidator = quizrecordDescSource.Validators[0].(func(string) error)
	// quizrecordDescQuestionCount is the schema descriptor for question_count field.
	quizrecordDescQuestionCount := quizrecordFields[3].Descriptor()
	// quizrecord.DefaultQuestionCount holds the default value on creation for the question_count field.
	quizrecord.DefaultQuestionCount = quizrecordDescQuestionCount.Default.(int)
	// quizrecordDescImportedAt is the schema descriptor for imported_at field.
	quizrecordDescImportedAt := quizrecordFields[7].Descriptor()
	// quizrecord.DefaultImportedAt holds the default value on creation for the imported_at field.
	quizrecord.DefaultImportedAt = quizrecordDescImportedAt.Default.(func() time.Time)
}
