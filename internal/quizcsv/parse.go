// Package quizcsv parses the quiz CSV dialect emitted by the course
// tool's question export into the typed model in internal/quiz.
//
// The format is record oriented: each logical record starts with a
// case-insensitive row key (NewQuestion, Title, Option, Choice, ...) and
// a NewQuestion record opens a question that subsequent records fill in
// until the next NewQuestion or end of input. Quoting is minimal by
// design, matching the exporting tool's known output shape: double
// quotes enclose cells, "" escapes a literal quote, and quoted cells may
// contain commas and newlines.
//
// Parsing never fails. Malformed rows, unknown keys, and incomplete
// questions degrade to diagnostics on the Result, and the Quiz holds
// whatever valid questions could be assembled, possibly none.
package quizcsv

import "github.com/ignaciourbina/quizview/internal/quiz"

// Result carries the parsed quiz together with the ordered list of
// non-fatal diagnostics accumulated while parsing.
type Result struct {
	Quiz        quiz.Quiz
	Diagnostics []Diagnostic
}

// Warnings returns only the warning-severity diagnostics.
func (r *Result) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Parse parses a complete quiz CSV buffer with default options.
func Parse(text string) *Result {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions parses a complete quiz CSV buffer. It is a pure
// function of its inputs: no state survives between calls, so it is safe
// to call repeatedly or from independent goroutines.
func ParseWithOptions(text string, opts Options) *Result {
	a := newAssembler(opts)
	for i, rec := range SplitRecords(text) {
		a.record = i + 1
		a.consume(SplitFields(rec))
	}
	q, diags := a.finish()
	return &Result{Quiz: q, Diagnostics: diags}
}
