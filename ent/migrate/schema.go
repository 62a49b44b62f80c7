// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuizRecordsColumns holds the columns for the "quiz_records" table.
	QuizRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "type_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "diagnostics", Type: field.TypeJSON, Nullable: true},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// QuizRecordsTable holds the schema information for the "quiz_records" table.
	QuizRecordsTable = &schema.Table{
		Name:       "quiz_records",
		Columns:    QuizRecordsColumns,
		PrimaryKey: []*schema.Column{QuizRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizrecord_uid",
				Unique:  false,
				Columns: []*schema.Column{QuizRecordsColumns[1]},
			},
			{
				Name:    "quizrecord_imported_at",
				Unique:  false,
				Columns: []*schema.Column{QuizRecordsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuizRecordsTable,
	}
)

func init() {
}
