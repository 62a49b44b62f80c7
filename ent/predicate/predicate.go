// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QuizRecord is the predicate function for quizrecord builders.
type QuizRecord func(*sql.Selector)
