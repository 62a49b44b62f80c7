package quizcsv

// Options carries the parser defaults that used to be hidden literals in
// the exporting tool. Tests vary them; production callers use
// DefaultOptions.
type Options struct {
	// DefaultPoints is assigned to every new question and used when a
	// Points cell is missing or unparseable.
	DefaultPoints int

	// InputBoxRows and InputBoxCols are the short-answer box dimensions
	// used when an InputBox cell is missing or unparseable.
	InputBoxRows int
	InputBoxCols int

	// PlaceholderChoiceText fills the choice side of a matching pair
	// created by a Match row that references a choice number never seen
	// in a Choice row.
	PlaceholderChoiceText string
}

// DefaultOptions returns the defaults observed in the exporting tool's
// output shape.
func DefaultOptions() Options {
	return Options{
		DefaultPoints:         1,
		InputBoxRows:          1,
		InputBoxCols:          40,
		PlaceholderChoiceText: "???",
	}
}
