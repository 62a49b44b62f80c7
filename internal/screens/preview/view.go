package preview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ignaciourbina/quizview/internal/quiz"
	"github.com/ignaciourbina/quizview/internal/render"
	"github.com/ignaciourbina/quizview/internal/ui/theme"
)

func (s *PreviewScreen) View(width, height int) string {
	if s.showDiags {
		return s.viewDiagnostics(width, height)
	}

	if len(s.quiz.Questions) == 0 {
		empty := theme.Hint.Render("This file produced no valid questions.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	q := s.quiz.Questions[s.index]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(typeLine(q)))
	b.WriteString("\n")
	b.WriteString(theme.Title.Align(lipgloss.Left).Render(q.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(q.Text))
	b.WriteString("\n")

	if body := variantView(q); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	if q.Hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Hint: " + q.Hint))
		b.WriteString("\n")
	}
	if q.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Feedback: " + q.Feedback))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func typeLine(q quiz.Question) string {
	parts := []string{render.TypeName(q.Type)}
	parts = append(parts, fmt.Sprintf("%d pt", q.Points))
	if q.Difficulty > 0 {
		parts = append(parts, fmt.Sprintf("difficulty %d", q.Difficulty))
	}
	if q.Image != "" {
		parts = append(parts, "image: "+q.Image)
	}
	return strings.Join(parts, " · ")
}

func variantView(q quiz.Question) string {
	var b strings.Builder
	switch {
	case q.WrittenResponse != nil:
		wr := q.WrittenResponse
		if wr.InitialText != "" {
			b.WriteString(theme.Body.Render("Initial text: "+wr.InitialText) + "\n")
		}
		if wr.AnswerKey != "" {
			b.WriteString(theme.Correct.Render("Answer key: "+wr.AnswerKey) + "\n")
		}

	case q.ShortAnswer != nil:
		sa := q.ShortAnswer
		b.WriteString(theme.Correct.Render("Answer: "+sa.Best) + "\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("matched %s, input box %dx%d", sa.Eval, sa.Rows, sa.Cols)) + "\n")

	case q.Matching != nil:
		m := q.Matching
		if m.Scoring != "" {
			b.WriteString(theme.Hint.Render("Scoring: "+m.Scoring) + "\n")
		}
		for _, p := range m.Pairs {
			line := fmt.Sprintf("%d. %s  →  %s", p.ChoiceNo, p.ChoiceText, p.MatchText)
			b.WriteString(theme.Body.Render(line) + "\n")
		}

	case q.MultipleChoice != nil:
		for i, opt := range q.MultipleChoice.Options {
			note := fmt.Sprintf("%d%%", opt.Percent)
			b.WriteString(optionLine(i, opt.Text, opt.Percent > 0, note) + "\n")
			if opt.Feedback != "" {
				b.WriteString(theme.Hint.Render("     "+opt.Feedback) + "\n")
			}
		}

	case q.TrueFalse != nil:
		b.WriteString(tfLine("True", q.TrueFalse.True) + "\n")
		b.WriteString(tfLine("False", q.TrueFalse.False) + "\n")

	case q.MultiSelect != nil:
		ms := q.MultiSelect
		if ms.Scoring != "" {
			b.WriteString(theme.Hint.Render("Scoring: "+ms.Scoring) + "\n")
		}
		for i, opt := range ms.Options {
			note := fmt.Sprintf("weight %d", opt.Weight)
			b.WriteString(optionLine(i, opt.Text, opt.Weight > 0, note) + "\n")
			if opt.Feedback != "" {
				b.WriteString(theme.Hint.Render("     "+opt.Feedback) + "\n")
			}
		}

	case q.Ordering != nil:
		o := q.Ordering
		if o.Scoring != "" {
			b.WriteString(theme.Hint.Render("Scoring: "+o.Scoring) + "\n")
		}
		for i, item := range o.Items {
			b.WriteString(theme.Body.Render(fmt.Sprintf("%2d. %s", i+1, item.Text)) + "\n")
			if item.Feedback != "" {
				b.WriteString(theme.Hint.Render("     "+item.Feedback) + "\n")
			}
		}
	}
	return b.String()
}

func optionLine(idx int, text string, positive bool, note string) string {
	label := fmt.Sprintf(" %c) %s", 'a'+rune(idx), text)
	style := theme.Incorrect
	if positive {
		style = theme.Correct
	}
	return style.Render(label) + theme.Hint.Render("  ("+note+")")
}

func tfLine(label string, opt *quiz.TFOption) string {
	if opt == nil {
		return theme.Hint.Render(" " + label + ": (not set)")
	}
	style := theme.Incorrect
	if opt.Percent > 0 {
		style = theme.Correct
	}
	line := style.Render(fmt.Sprintf(" %s  (%d%%)", label, opt.Percent))
	if opt.Feedback != "" {
		line += theme.Hint.Render("  " + opt.Feedback)
	}
	return line
}

func (s *PreviewScreen) viewDiagnostics(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Align(lipgloss.Left).Render("Parser diagnostics"))
	b.WriteString("\n\n")
	for _, d := range s.diags {
		style := theme.DiagInfo
		if d.warn {
			style = theme.DiagWarning
		}
		b.WriteString(style.Render(d.text) + "\n")
	}
	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
