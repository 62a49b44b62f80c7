package quizcsv

import "fmt"

// Severity classifies a parser diagnostic.
type Severity string

const (
	// SeverityInfo marks notes about ignored input (unknown row keys,
	// boilerplate rows before the first question).
	SeverityInfo Severity = "info"

	// SeverityWarning marks degraded input: dropped questions, repaired
	// matching pairs, skipped rows.
	SeverityWarning Severity = "warning"
)

// Diagnostic is one non-fatal parser finding. The parser never fails;
// everything it could not use is reported here instead.
type Diagnostic struct {
	Severity Severity

	// Record is the 1-based logical record index the finding refers to,
	// or 0 for end-of-input findings.
	Record int

	Message string
}

func (d Diagnostic) String() string {
	if d.Record > 0 {
		return fmt.Sprintf("%s: record %d: %s", d.Severity, d.Record, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}
