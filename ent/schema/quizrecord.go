package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizRecord is one imported quiz in the local library: the parsed model
// serialized as JSON plus enough metadata to list entries without
// deserializing them.
type QuizRecord struct {
	ent.Schema
}

func (QuizRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			Comment("UUID assigned at import time"),
		field.String("source").
			NotEmpty().
			Comment("Base name of the imported file"),
		field.String("title").
			Comment("Display title derived from the source name"),
		field.Int("question_count").
			Default(0).
			Comment("Number of valid questions in the quiz"),
		field.JSON("type_counts", map[string]int{}).
			Optional().
			Comment("Question count per type code"),
		field.JSON("data", map[string]any{}).
			Comment("Parsed quiz model as JSON"),
		field.Strings("diagnostics").
			Optional().
			Comment("Parser diagnostics recorded at import time"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable().
			Comment("When the quiz was imported"),
	}
}

func (QuizRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uid"),
		index.Fields("imported_at"),
	}
}
