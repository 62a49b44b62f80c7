package quizcsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ignaciourbina/quizview/internal/quiz"
)

// assembler is the record-oriented state machine. It is either between
// questions (cur == nil) or accumulating fields into cur until the next
// NewQuestion row or end of input finalizes it.
type assembler struct {
	opts Options

	questions []quiz.Question
	diags     []Diagnostic

	cur *quiz.Question

	// record is the 1-based index of the record being consumed, for
	// diagnostics.
	record int

	// tfOrder counts true/false option rows so a later free-floating
	// Feedback row can attach to whichever side was defined last.
	tfOrder int

	// saAnswerSet tracks whether cur has seen an Answer row. A best
	// answer may legitimately be empty, so presence is tracked here
	// rather than inferred from the field value.
	saAnswerSet bool
}

func newAssembler(opts Options) *assembler {
	return &assembler{opts: opts}
}

func (a *assembler) infof(format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{Severity: SeverityInfo, Record: a.record, Message: fmt.Sprintf(format, args...)})
}

func (a *assembler) warnf(format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{Severity: SeverityWarning, Record: a.record, Message: fmt.Sprintf(format, args...)})
}

// cell returns cells[i], or "" when the row is too short. Missing cells
// are defaults, never errors.
func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// atoiOr parses s as an integer, falling back to def on any failure.
func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// isHTML reports whether a flag cell marks its text as markup.
func isHTML(s string) bool {
	return strings.EqualFold(s, "html")
}

// consume processes one tokenized record. A panic while handling a row
// is confined to that row: the record is skipped with a warning and
// parsing continues.
func (a *assembler) consume(cells []string) {
	defer func() {
		if r := recover(); r != nil {
			a.warnf("row skipped after processing failure: %v", r)
		}
	}()

	key := strings.ToLower(cell(cells, 0))
	if key == "newquestion" {
		a.startQuestion(cells)
		return
	}

	// Anything before the first NewQuestion is boilerplate; ignore it.
	if a.cur == nil {
		return
	}

	switch key {
	case "id":
		a.cur.ID = cell(cells, 1)
	case "title":
		a.cur.Title = cell(cells, 1)
	case "questiontext":
		a.cur.Text = cell(cells, 1)
	case "points":
		a.cur.Points = atoiOr(cell(cells, 1), a.opts.DefaultPoints)
	case "difficulty":
		a.cur.Difficulty = atoiOr(cell(cells, 1), 0)
	case "image":
		a.cur.Image = cell(cells, 1)
	case "hint":
		a.cur.Hint = cell(cells, 1)
	case "feedback":
		a.attachFeedback(cell(cells, 1))
	default:
		a.typedKey(key, cells)
	}
}

// startQuestion finalizes the in-progress question and begins a new one
// from the type code in the second cell. An unknown code discards the
// whole record and leaves no question in progress.
func (a *assembler) startQuestion(cells []string) {
	a.finalize()

	code := strings.ToUpper(cell(cells, 1))
	if !quiz.KnownType(code) {
		a.warnf("unknown question type %q, record discarded", cell(cells, 1))
		return
	}

	q := &quiz.Question{
		Type:   quiz.Type(code),
		Points: a.opts.DefaultPoints,
	}
	switch q.Type {
	case quiz.TypeWrittenResponse:
		q.WrittenResponse = &quiz.WrittenResponse{}
	case quiz.TypeShortAnswer:
		q.ShortAnswer = &quiz.ShortAnswer{
			Eval: quiz.EvalInsensitive,
			Rows: a.opts.InputBoxRows,
			Cols: a.opts.InputBoxCols,
		}
	case quiz.TypeMatching:
		q.Matching = &quiz.Matching{}
	case quiz.TypeMultipleChoice:
		q.MultipleChoice = &quiz.MultipleChoice{}
	case quiz.TypeTrueFalse:
		q.TrueFalse = &quiz.TrueFalse{}
	case quiz.TypeMultiSelect:
		q.MultiSelect = &quiz.MultiSelect{}
	case quiz.TypeOrdering:
		q.Ordering = &quiz.Ordering{}
	}

	a.cur = q
	a.tfOrder = 0
	a.saAnswerSet = false
}

// typedKey dispatches a type-specific row key. A key used on the wrong
// question type is reported and ignored.
func (a *assembler) typedKey(key string, cells []string) {
	q := a.cur
	switch key {
	case "initialtext":
		if q.WrittenResponse == nil {
			a.mismatch(key)
			return
		}
		q.WrittenResponse.InitialText = cell(cells, 1)
	case "answerkey":
		if q.WrittenResponse == nil {
			a.mismatch(key)
			return
		}
		q.WrittenResponse.AnswerKey = cell(cells, 1)
	case "inputbox":
		if q.ShortAnswer == nil {
			a.mismatch(key)
			return
		}
		q.ShortAnswer.Rows = atoiOr(cell(cells, 1), a.opts.InputBoxRows)
		q.ShortAnswer.Cols = atoiOr(cell(cells, 2), a.opts.InputBoxCols)
	case "answer":
		if q.ShortAnswer == nil {
			a.mismatch(key)
			return
		}
		q.ShortAnswer.Best = cell(cells, 2)
		switch strings.ToLower(cell(cells, 3)) {
		case "regexp":
			q.ShortAnswer.Eval = quiz.EvalRegexp
		case "sensitive":
			q.ShortAnswer.Eval = quiz.EvalSensitive
		default:
			q.ShortAnswer.Eval = quiz.EvalInsensitive
		}
		a.saAnswerSet = true
	case "scoring":
		switch {
		case q.Matching != nil:
			q.Matching.Scoring = cell(cells, 1)
		case q.MultiSelect != nil:
			q.MultiSelect.Scoring = cell(cells, 1)
		case q.Ordering != nil:
			q.Ordering.Scoring = cell(cells, 1)
		default:
			a.mismatch(key)
		}
	case "choice":
		if q.Matching == nil {
			a.mismatch(key)
			return
		}
		a.choiceRow(cells)
	case "match":
		if q.Matching == nil {
			a.mismatch(key)
			return
		}
		a.matchRow(cells)
	case "option":
		switch {
		case q.MultipleChoice != nil:
			q.MultipleChoice.Options = append(q.MultipleChoice.Options, quiz.Option{
				Percent:      atoiOr(cell(cells, 1), 0),
				Text:         cell(cells, 2),
				HTML:         isHTML(cell(cells, 3)),
				Feedback:     cell(cells, 4),
				FeedbackHTML: isHTML(cell(cells, 5)),
			})
		case q.MultiSelect != nil:
			q.MultiSelect.Options = append(q.MultiSelect.Options, quiz.Option{
				Weight:       atoiOr(cell(cells, 1), 0),
				Text:         cell(cells, 2),
				HTML:         isHTML(cell(cells, 3)),
				Feedback:     cell(cells, 4),
				FeedbackHTML: isHTML(cell(cells, 5)),
			})
		default:
			a.mismatch(key)
		}
	case "true":
		if q.TrueFalse == nil {
			a.mismatch(key)
			return
		}
		q.TrueFalse.True = a.tfOption(cells)
	case "false":
		if q.TrueFalse == nil {
			a.mismatch(key)
			return
		}
		q.TrueFalse.False = a.tfOption(cells)
	case "item":
		if q.Ordering == nil {
			a.mismatch(key)
			return
		}
		// The exporting tool writes the item feedback-html flag in the
		// sixth cell, not the fifth as Option rows do.
		q.Ordering.Items = append(q.Ordering.Items, quiz.Item{
			Text:         cell(cells, 1),
			HTML:         isHTML(cell(cells, 2)),
			Feedback:     cell(cells, 3),
			FeedbackHTML: isHTML(cell(cells, 5)),
		})
	default:
		a.infof("unrecognized row key %q ignored", cell(cells, 0))
	}
}

func (a *assembler) mismatch(key string) {
	a.warnf("row key %q is not valid for a %s question, row ignored", key, a.cur.Type)
}

func (a *assembler) tfOption(cells []string) *quiz.TFOption {
	a.tfOrder++
	return &quiz.TFOption{
		Percent:  atoiOr(cell(cells, 1), 0),
		Feedback: cell(cells, 2),
		HTML:     isHTML(cell(cells, 3)),
		Order:    a.tfOrder,
	}
}

// choiceRow finds or creates the pair keyed by the choice number and
// sets its choice text.
func (a *assembler) choiceRow(cells []string) {
	no := atoiOr(cell(cells, 1), 0)
	if no <= 0 {
		a.warnf("choice row has invalid choice number %q, row skipped", cell(cells, 1))
		return
	}
	m := a.cur.Matching
	if p := findPair(m, no); p != nil {
		p.ChoiceText = cell(cells, 2)
		return
	}
	m.Pairs = append(m.Pairs, quiz.Pair{ChoiceNo: no, ChoiceText: cell(cells, 2)})
}

// matchRow sets the match text on the pair keyed by the choice number.
// A match for an unseen choice number repairs itself with a placeholder
// pair instead of failing the question.
func (a *assembler) matchRow(cells []string) {
	no := atoiOr(cell(cells, 1), 0)
	if no <= 0 {
		a.warnf("match row has invalid choice number %q, row skipped", cell(cells, 1))
		return
	}
	m := a.cur.Matching
	if p := findPair(m, no); p != nil {
		p.MatchText = cell(cells, 2)
		return
	}
	a.warnf("match row references choice %d before any choice row, placeholder pair created", no)
	m.Pairs = append(m.Pairs, quiz.Pair{
		ChoiceNo:   no,
		ChoiceText: a.opts.PlaceholderChoiceText,
		MatchText:  cell(cells, 2),
	})
}

func findPair(m *quiz.Matching, no int) *quiz.Pair {
	for i := range m.Pairs {
		if m.Pairs[i].ChoiceNo == no {
			return &m.Pairs[i]
		}
	}
	return nil
}

// attachFeedback applies the last-open-slot rule: a free-floating
// Feedback row annotates the most recently appended element of the
// question's active collection, falling back to the question-level
// feedback when no element exists.
func (a *assembler) attachFeedback(text string) {
	q := a.cur
	switch {
	case q.MultipleChoice != nil && len(q.MultipleChoice.Options) > 0:
		opts := q.MultipleChoice.Options
		opts[len(opts)-1].Feedback = text
	case q.MultiSelect != nil && len(q.MultiSelect.Options) > 0:
		opts := q.MultiSelect.Options
		opts[len(opts)-1].Feedback = text
	case q.Ordering != nil && len(q.Ordering.Items) > 0:
		items := q.Ordering.Items
		items[len(items)-1].Feedback = text
	case q.TrueFalse != nil && (q.TrueFalse.True != nil || q.TrueFalse.False != nil):
		q.TrueFalse.Latest().Feedback = text
	default:
		q.Feedback = text
	}
}

// finalize validates the in-progress question and either appends it to
// the output sequence or drops it with a diagnostic. Afterwards no
// question is in progress.
func (a *assembler) finalize() {
	q := a.cur
	if q == nil {
		return
	}
	a.cur = nil

	if reason := a.incomplete(q); reason != "" {
		title := q.Title
		if title == "" {
			title = "(untitled)"
		}
		a.warnf("dropping %s question %q: %s", q.Type, title, reason)
		return
	}
	a.questions = append(a.questions, *q)
}

// incomplete returns a human-readable reason the question cannot be
// included, or "" when it passes all completeness checks.
func (a *assembler) incomplete(q *quiz.Question) string {
	if q.Title == "" {
		return "missing title"
	}
	if q.Text == "" {
		return "missing question text"
	}

	switch q.Type {
	case quiz.TypeShortAnswer:
		if !a.saAnswerSet {
			return "no answer row"
		}
	case quiz.TypeMatching:
		for _, p := range q.Matching.Pairs {
			if p.ChoiceText != "" && p.MatchText != "" {
				return ""
			}
		}
		return "no complete matching pair"
	case quiz.TypeMultipleChoice:
		if len(q.MultipleChoice.Options) == 0 {
			return "no options"
		}
	case quiz.TypeTrueFalse:
		if q.TrueFalse.True == nil || q.TrueFalse.False == nil {
			return "missing true or false option"
		}
	case quiz.TypeMultiSelect:
		if len(q.MultiSelect.Options) == 0 {
			return "no options"
		}
	case quiz.TypeOrdering:
		if len(q.Ordering.Items) == 0 {
			return "no items"
		}
	}
	return ""
}

// finish flushes the last in-progress question and returns the result.
func (a *assembler) finish() (quiz.Quiz, []Diagnostic) {
	a.record = 0
	a.finalize()
	return quiz.Quiz{Questions: a.questions}, a.diags
}
