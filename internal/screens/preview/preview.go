// Package preview renders a parsed quiz one question at a time. It is a
// read-only view: it tolerates absent optional fields and never
// re-validates what the parser produced.
package preview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ignaciourbina/quizview/internal/quiz"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
	"github.com/ignaciourbina/quizview/internal/screen"
	"github.com/ignaciourbina/quizview/internal/ui/layout"
)

// diagLine is one displayable parser finding.
type diagLine struct {
	warn bool
	text string
}

// PreviewScreen pages through the questions of one parsed quiz.
type PreviewScreen struct {
	source    string
	quiz      quiz.Quiz
	diags     []diagLine
	index     int
	showDiags bool
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)
var _ screen.StatusProvider = (*PreviewScreen)(nil)

// New creates a preview for a fresh parse result.
func New(source string, result *quizcsv.Result) *PreviewScreen {
	s := &PreviewScreen{source: source, quiz: result.Quiz}
	for _, d := range result.Diagnostics {
		s.diags = append(s.diags, diagLine{
			warn: d.Severity == quizcsv.SeverityWarning,
			text: d.String(),
		})
	}
	return s
}

// NewStored creates a preview for a library entry, whose diagnostics
// were saved as rendered strings prefixed with their severity.
func NewStored(source string, qz quiz.Quiz, notes []string) *PreviewScreen {
	s := &PreviewScreen{source: source, quiz: qz}
	for _, n := range notes {
		s.diags = append(s.diags, diagLine{
			warn: strings.HasPrefix(n, string(quizcsv.SeverityWarning)),
			text: n,
		})
	}
	return s
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) Title() string {
	return s.source
}

// Status shows the cursor position in the header.
func (s *PreviewScreen) Status() string {
	n := len(s.quiz.Questions)
	if n == 0 {
		return "no questions"
	}
	return fmt.Sprintf("question %d/%d", s.index+1, n)
}

func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
	}
	if len(s.diags) > 0 {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Diagnostics"})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	n := len(s.quiz.Questions)
	switch kmsg.String() {
	case "left", "h":
		if s.index > 0 {
			s.index--
		}
	case "right", "l":
		if s.index < n-1 {
			s.index++
		}
	case "d":
		if len(s.diags) > 0 {
			s.showDiags = !s.showDiags
		}
	}
	return s, nil
}

// Index returns the current question cursor (for tests).
func (s *PreviewScreen) Index() int {
	return s.index
}
