// Package render produces plain-text renderings of parsed quizzes. The
// TUI preview screen styles this output; the preview --plain flag prints
// it verbatim. Rendering never validates: any optional field may be
// absent and markup is shown as-is.
package render

import (
	"fmt"
	"strings"

	"github.com/ignaciourbina/quizview/internal/quiz"
)

// TypeName returns the human-readable name of a question type.
func TypeName(t quiz.Type) string {
	switch t {
	case quiz.TypeWrittenResponse:
		return "Written Response"
	case quiz.TypeShortAnswer:
		return "Short Answer"
	case quiz.TypeMatching:
		return "Matching"
	case quiz.TypeMultipleChoice:
		return "Multiple Choice"
	case quiz.TypeTrueFalse:
		return "True/False"
	case quiz.TypeMultiSelect:
		return "Multi-Select"
	case quiz.TypeOrdering:
		return "Ordering"
	default:
		return string(t)
	}
}

// Question renders one question as indented plain text.
func Question(q quiz.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", TypeName(q.Type), q.Title)
	if q.ID != "" {
		fmt.Fprintf(&b, " (%s)", q.ID)
	}
	fmt.Fprintf(&b, "  —  %d pt", q.Points)
	if q.Points != 1 {
		b.WriteString("s")
	}
	if q.Difficulty > 0 {
		fmt.Fprintf(&b, ", difficulty %d", q.Difficulty)
	}
	b.WriteString("\n\n")

	b.WriteString(q.Text)
	b.WriteString("\n")

	if q.Image != "" {
		fmt.Fprintf(&b, "\nImage: %s\n", q.Image)
	}

	body := variantBody(q)
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}

	if q.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", q.Hint)
	}
	if q.Feedback != "" {
		fmt.Fprintf(&b, "\nFeedback: %s\n", q.Feedback)
	}

	return b.String()
}

// Quiz renders every question separated by a rule, with a summary line.
func Quiz(qz quiz.Quiz) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d question(s)\n", len(qz.Questions))
	for i, q := range qz.Questions {
		fmt.Fprintf(&b, "\n―― %d/%d %s\n", i+1, len(qz.Questions), strings.Repeat("―", 40))
		b.WriteString(Question(q))
	}
	return b.String()
}

func variantBody(q quiz.Question) string {
	var b strings.Builder

	switch {
	case q.WrittenResponse != nil:
		wr := q.WrittenResponse
		if wr.InitialText != "" {
			fmt.Fprintf(&b, "Initial text: %s\n", wr.InitialText)
		}
		if wr.AnswerKey != "" {
			fmt.Fprintf(&b, "Answer key: %s\n", wr.AnswerKey)
		}

	case q.ShortAnswer != nil:
		sa := q.ShortAnswer
		fmt.Fprintf(&b, "Input box: %d x %d\n", sa.Rows, sa.Cols)
		fmt.Fprintf(&b, "Best answer: %s (%s)\n", sa.Best, sa.Eval)

	case q.Matching != nil:
		m := q.Matching
		if m.Scoring != "" {
			fmt.Fprintf(&b, "Scoring: %s\n", m.Scoring)
		}
		for _, p := range m.Pairs {
			fmt.Fprintf(&b, "  %d. %s  ↔  %s\n", p.ChoiceNo, p.ChoiceText, p.MatchText)
		}

	case q.MultipleChoice != nil:
		for i, o := range q.MultipleChoice.Options {
			fmt.Fprintf(&b, "  %c) %s  [%d%%]", 'a'+i, o.Text, o.Percent)
			if o.Feedback != "" {
				fmt.Fprintf(&b, "  — %s", o.Feedback)
			}
			b.WriteString("\n")
		}

	case q.TrueFalse != nil:
		tf := q.TrueFalse
		writeTF := func(label string, o *quiz.TFOption) {
			if o == nil {
				return
			}
			fmt.Fprintf(&b, "  %s  [%d%%]", label, o.Percent)
			if o.Feedback != "" {
				fmt.Fprintf(&b, "  — %s", o.Feedback)
			}
			b.WriteString("\n")
		}
		writeTF("True ", tf.True)
		writeTF("False", tf.False)

	case q.MultiSelect != nil:
		ms := q.MultiSelect
		if ms.Scoring != "" {
			fmt.Fprintf(&b, "Scoring: %s\n", ms.Scoring)
		}
		for _, o := range ms.Options {
			mark := " "
			if o.Weight > 0 {
				mark = "✓"
			} else if o.Weight < 0 {
				mark = "✗"
			}
			fmt.Fprintf(&b, "  [%s] %s  (weight %d)", mark, o.Text, o.Weight)
			if o.Feedback != "" {
				fmt.Fprintf(&b, "  — %s", o.Feedback)
			}
			b.WriteString("\n")
		}

	case q.Ordering != nil:
		o := q.Ordering
		if o.Scoring != "" {
			fmt.Fprintf(&b, "Scoring: %s\n", o.Scoring)
		}
		for i, it := range o.Items {
			fmt.Fprintf(&b, "  %d. %s", i+1, it.Text)
			if it.Feedback != "" {
				fmt.Fprintf(&b, "  — %s", it.Feedback)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
