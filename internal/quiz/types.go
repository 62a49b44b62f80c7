// Package quiz defines the in-memory model produced by the CSV parser
// and consumed by the preview, export, and library layers.
package quiz

// Type identifies one of the seven question variants.
type Type string

const (
	TypeWrittenResponse Type = "WR"
	TypeShortAnswer     Type = "SA"
	TypeMatching        Type = "M"
	TypeMultipleChoice  Type = "MC"
	TypeTrueFalse       Type = "TF"
	TypeMultiSelect     Type = "MS"
	TypeOrdering        Type = "O"
)

// KnownType reports whether code (upper-cased) is one of the seven
// recognized question type codes.
func KnownType(code string) bool {
	switch Type(code) {
	case TypeWrittenResponse, TypeShortAnswer, TypeMatching,
		TypeMultipleChoice, TypeTrueFalse, TypeMultiSelect, TypeOrdering:
		return true
	}
	return false
}

// EvalMode describes how a short-answer response is compared with the
// best answer.
type EvalMode string

const (
	EvalRegexp      EvalMode = "regexp"
	EvalSensitive   EvalMode = "sensitive"
	EvalInsensitive EvalMode = "insensitive"
)

// Quiz is an ordered collection of parsed questions. It is created once
// per parse call and never mutated after the parser returns it.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is the tagged union shared by all seven variants. Type names
// which payload pointer is non-nil; exactly one is set on a valid
// question.
type Question struct {
	// Type is the question variant tag.
	Type Type `json:"type"`

	// ID is the exporting tool's optional explicit identifier.
	ID string `json:"id,omitempty"`

	// Title is the short display title. Required.
	Title string `json:"title"`

	// Text is the rich-text question body. May span multiple physical
	// lines in the source file; markup is passed through untouched.
	// Required.
	Text string `json:"text"`

	// Points is the score weight. Defaults to 1 when the source row is
	// absent or unparseable.
	Points int `json:"points"`

	// Difficulty is the optional 1-10 difficulty. Stored as parsed,
	// never range-checked.
	Difficulty int `json:"difficulty,omitempty"`

	// Image is an optional image reference (path or URL).
	Image string `json:"image,omitempty"`

	// Hint is an optional hint shown on request.
	Hint string `json:"hint,omitempty"`

	// Feedback is the question-level general feedback. Free-floating
	// Feedback rows land here only when no option/item can claim them.
	Feedback string `json:"feedback,omitempty"`

	WrittenResponse *WrittenResponse `json:"writtenResponse,omitempty"`
	ShortAnswer     *ShortAnswer     `json:"shortAnswer,omitempty"`
	Matching        *Matching        `json:"matching,omitempty"`
	MultipleChoice  *MultipleChoice  `json:"multipleChoice,omitempty"`
	TrueFalse       *TrueFalse       `json:"trueFalse,omitempty"`
	MultiSelect     *MultiSelect     `json:"multiSelect,omitempty"`
	Ordering        *Ordering        `json:"ordering,omitempty"`
}

// WrittenResponse holds the WR-specific fields.
type WrittenResponse struct {
	// InitialText pre-fills the response box.
	InitialText string `json:"initialText,omitempty"`

	// AnswerKey is shown to graders, not to the quiz taker.
	AnswerKey string `json:"answerKey,omitempty"`
}

// ShortAnswer holds the SA-specific fields.
type ShortAnswer struct {
	// Best is the expected answer string. Required for a valid SA.
	Best string `json:"best"`

	// Eval selects the comparison mode. Defaults to insensitive.
	Eval EvalMode `json:"eval"`

	// Rows and Cols are the input box dimensions (default 1 x 40).
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Pair is one matching pair, joined to its rows by ChoiceNo.
type Pair struct {
	// ChoiceNo is the positive join key shared by the Choice and Match
	// rows that built this pair.
	ChoiceNo int `json:"choiceNo"`

	ChoiceText string `json:"choiceText"`
	MatchText  string `json:"matchText"`
}

// Matching holds the M-specific fields.
type Matching struct {
	// Scoring is one of EquallyWeighted, AllOrNothing, RightMinusWrong,
	// stored as-is.
	Scoring string `json:"scoring,omitempty"`

	Pairs []Pair `json:"pairs"`
}

// Option is one multiple-choice or multi-select option.
type Option struct {
	// Percent is the credit for an MC option; Weight is the signed
	// weight for an MS option. Only the field matching the question
	// type is meaningful. Neither is range-validated.
	Percent int `json:"percent,omitempty"`
	Weight  int `json:"weight,omitempty"`

	Text         string `json:"text"`
	HTML         bool   `json:"html,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
	FeedbackHTML bool   `json:"feedbackHTML,omitempty"`
}

// MultipleChoice holds the MC-specific fields.
type MultipleChoice struct {
	Options []Option `json:"options"`
}

// TFOption is one side of a true/false question.
type TFOption struct {
	Percent  int    `json:"percent"`
	Feedback string `json:"feedback,omitempty"`
	HTML     bool   `json:"html,omitempty"`

	// Order is the insertion-order counter recorded when the option's
	// row was processed. A free-floating Feedback row attaches to
	// whichever of the two options was defined later.
	Order int `json:"-"`
}

// TrueFalse holds the TF-specific fields. A valid TF question has both
// options set.
type TrueFalse struct {
	True  *TFOption `json:"true"`
	False *TFOption `json:"false"`
}

// Latest returns whichever option was defined later in the source file,
// or whichever one exists. Returns nil when neither is set.
func (tf *TrueFalse) Latest() *TFOption {
	switch {
	case tf.True == nil:
		return tf.False
	case tf.False == nil:
		return tf.True
	case tf.False.Order > tf.True.Order:
		return tf.False
	default:
		return tf.True
	}
}

// MultiSelect holds the MS-specific fields.
type MultiSelect struct {
	// Scoring is a raw passthrough; the domain defines four known
	// values but the model does not restrict it.
	Scoring string `json:"scoring,omitempty"`

	Options []Option `json:"options"`
}

// Item is one ordering item.
type Item struct {
	Text         string `json:"text"`
	HTML         bool   `json:"html,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
	FeedbackHTML bool   `json:"feedbackHTML,omitempty"`
}

// Ordering holds the O-specific fields. Items are stored in correct
// order.
type Ordering struct {
	Scoring string `json:"scoring,omitempty"`
	Items   []Item `json:"items"`
}
