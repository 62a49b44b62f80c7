package preview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

const twoQuestionCSV = `NewQuestion,TF,,
Title,First,,
QuestionText,Sky is blue?,,
TRUE,100,,
FALSE,0,,

NewQuestion,TF,,
Title,Second,,
QuestionText,Grass is red?,,
TRUE,0,,
FALSE,100,,
`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(t *testing.T, s *PreviewScreen, keys ...tea.KeyPressMsg) {
	t.Helper()
	for _, k := range keys {
		updated, _ := s.Update(k)
		if updated != s {
			t.Fatalf("Update returned a different screen")
		}
	}
}

func TestNavigationClampsAtEnds(t *testing.T) {
	res := quizcsv.Parse(twoQuestionCSV)
	if len(res.Quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(res.Quiz.Questions))
	}
	s := New("two.csv", res)

	press(t, s, specialKey(tea.KeyLeft), specialKey(tea.KeyLeft))
	if s.Index() != 0 {
		t.Errorf("left at start moved cursor to %d", s.Index())
	}

	press(t, s, specialKey(tea.KeyRight), specialKey(tea.KeyRight), specialKey(tea.KeyRight))
	if s.Index() != 1 {
		t.Errorf("right past end moved cursor to %d", s.Index())
	}

	if got := s.Status(); got != "question 2/2" {
		t.Errorf("Status() = %q, want %q", got, "question 2/2")
	}
}

func TestDiagnosticsToggle(t *testing.T) {
	res := quizcsv.Parse("NewQuestion,ZZ,,\n" + twoQuestionCSV)
	if len(res.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	s := New("two.csv", res)

	press(t, s, keyPress('d'))
	if !strings.Contains(s.View(80, 24), "diagnostics") {
		t.Error("diagnostics view not shown after pressing d")
	}

	press(t, s, keyPress('d'))
	if strings.Contains(s.View(80, 24), "Parser diagnostics") {
		t.Error("diagnostics view still shown after second d")
	}
}

func TestStoredDiagnosticsShown(t *testing.T) {
	res := quizcsv.Parse(twoQuestionCSV)
	notes := []string{"warning: record 3: dropping TF question \"Third\": missing true or false option"}
	s := NewStored("two.csv", res.Quiz, notes)

	var hasToggle bool
	for _, h := range s.KeyHints() {
		if h.Key == "d" {
			hasToggle = true
		}
	}
	if !hasToggle {
		t.Fatal("stored entry with diagnostics offers no d toggle")
	}

	press(t, s, keyPress('d'))
	if !strings.Contains(s.View(100, 40), "dropping TF question") {
		t.Error("stored diagnostic text not shown")
	}
}

func TestMultiSelectOptionsShowWeights(t *testing.T) {
	res := quizcsv.Parse(`NewQuestion,MS
Title,Primes
QuestionText,Select the primes.
Option,1,2
Option,-1,4`)
	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(res.Quiz.Questions))
	}

	view := New("primes.csv", res).View(100, 40)
	if !strings.Contains(view, "weight 1") || !strings.Contains(view, "weight -1") {
		t.Error("multi-select options not annotated with their weights")
	}
	if strings.Contains(view, "1%") {
		t.Error("multi-select weight rendered as a percentage")
	}
}

func TestEmptyQuizView(t *testing.T) {
	s := New("empty.csv", quizcsv.Parse(""))
	if got := s.Status(); got != "no questions" {
		t.Errorf("Status() = %q", got)
	}
	if !strings.Contains(s.View(80, 24), "no valid questions") {
		t.Error("empty view missing placeholder text")
	}
}
