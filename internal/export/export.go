// Package export serializes parse results to JSON and guards the output
// against the published schema, so downstream consumers can rely on the
// shape without re-validating quizzes themselves.
package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ignaciourbina/quizview/internal/quiz"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

// Document is the export envelope.
type Document struct {
	// Source is the name of the file the quiz was parsed from.
	Source string `json:"source,omitempty"`

	Quiz quiz.Quiz `json:"quiz"`

	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// DiagnosticJSON is the wire form of a parser diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Record   int    `json:"record,omitempty"`
	Message  string `json:"message"`
}

// NewDocument assembles the export envelope from a parse result.
func NewDocument(source string, res *quizcsv.Result) Document {
	doc := Document{Source: source, Quiz: res.Quiz}
	for _, d := range res.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, DiagnosticJSON{
			Severity: string(d.Severity),
			Record:   d.Record,
			Message:  d.Message,
		})
	}
	if doc.Quiz.Questions == nil {
		doc.Quiz.Questions = []quiz.Question{}
	}
	return doc
}

// Marshal renders the document as indented JSON, validated against the
// export schema before being returned.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal quiz: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks raw JSON against the export schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("export schema validation failed: %w", err)
	}
	return nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so the
		// definition round-trips through encoding/json first.
		defBytes, err := json.Marshal(quizSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quizview-export.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}
