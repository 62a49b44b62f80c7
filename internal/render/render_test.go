package render

import (
	"strings"
	"testing"

	"github.com/ignaciourbina/quizview/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{
			Type: quiz.TypeWrittenResponse, Title: "Essay", Text: "Discuss.", Points: 2,
			WrittenResponse: &quiz.WrittenResponse{AnswerKey: "thoughtful prose"},
		},
		{
			Type: quiz.TypeShortAnswer, Title: "Capital", Text: "Capital of France?", Points: 1,
			ShortAnswer: &quiz.ShortAnswer{Best: "Paris", Eval: quiz.EvalInsensitive, Rows: 1, Cols: 40},
		},
		{
			Type: quiz.TypeMatching, Title: "Capitals", Text: "Match.", Points: 1,
			Matching: &quiz.Matching{Pairs: []quiz.Pair{{ChoiceNo: 1, ChoiceText: "Ottawa", MatchText: "Canada"}}},
		},
		{
			Type: quiz.TypeMultipleChoice, Title: "Pick", Text: "Pick one.", Points: 1,
			MultipleChoice: &quiz.MultipleChoice{Options: []quiz.Option{{Percent: 100, Text: "Paris"}}},
		},
		{
			Type: quiz.TypeTrueFalse, Title: "Sky", Text: "Blue.", Points: 1,
			TrueFalse: &quiz.TrueFalse{True: &quiz.TFOption{Percent: 100}, False: &quiz.TFOption{Percent: 0}},
		},
		{
			Type: quiz.TypeMultiSelect, Title: "Primes", Text: "Select.", Points: 1,
			MultiSelect: &quiz.MultiSelect{Options: []quiz.Option{{Weight: 1, Text: "2"}}},
		},
		{
			Type: quiz.TypeOrdering, Title: "Steps", Text: "Order.", Points: 1,
			Ordering: &quiz.Ordering{Items: []quiz.Item{{Text: "Wake up"}}},
		},
	}
}

func TestQuestion_EveryVariantRenders(t *testing.T) {
	for _, q := range sampleQuestions() {
		out := Question(q)
		if out == "" {
			t.Errorf("%s: empty rendering", q.Type)
		}
		if !strings.Contains(out, q.Title) {
			t.Errorf("%s: rendering missing title %q", q.Type, q.Title)
		}
		if !strings.Contains(out, q.Text) {
			t.Errorf("%s: rendering missing body", q.Type)
		}
	}
}

func TestQuestion_ToleratesAbsentOptionalFields(t *testing.T) {
	// A bare question with a nil payload must not panic even though the
	// parser would never emit one.
	out := Question(quiz.Question{Type: quiz.TypeMultipleChoice, Title: "t", Text: "b", Points: 1,
		MultipleChoice: &quiz.MultipleChoice{}})
	if out == "" {
		t.Error("empty rendering")
	}
}

func TestQuiz_SummaryLine(t *testing.T) {
	out := Quiz(quiz.Quiz{Questions: sampleQuestions()})
	if !strings.Contains(out, "7 question(s)") {
		t.Errorf("missing summary line:\n%s", out)
	}
}
