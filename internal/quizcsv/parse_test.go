package quizcsv

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ignaciourbina/quizview/internal/quiz"
)

func parseOne(t *testing.T, text string) quiz.Question {
	t.Helper()
	res := Parse(text)
	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d (diagnostics: %v)",
			len(res.Quiz.Questions), res.Diagnostics)
	}
	if w := res.Warnings(); len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
	return res.Quiz.Questions[0]
}

func TestParse_MinimalValidQuestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		typ  quiz.Type
	}{
		{
			name: "written response",
			text: "NewQuestion,WR\nTitle,Essay\nQuestionText,Discuss.",
			typ:  quiz.TypeWrittenResponse,
		},
		{
			name: "short answer",
			text: "NewQuestion,SA\nTitle,Capital\nQuestionText,Capital of France?\nAnswer,100,Paris",
			typ:  quiz.TypeShortAnswer,
		},
		{
			name: "matching",
			text: "NewQuestion,M\nTitle,Capitals\nQuestionText,Match them.\nChoice,1,Ottawa\nMatch,1,Canada",
			typ:  quiz.TypeMatching,
		},
		{
			name: "multiple choice",
			text: "NewQuestion,MC\nTitle,Pick\nQuestionText,Pick one.\nOption,100,Paris",
			typ:  quiz.TypeMultipleChoice,
		},
		{
			name: "true false",
			text: "NewQuestion,TF\nTitle,Sky\nQuestionText,The sky is blue.\nTrue,100\nFalse,0",
			typ:  quiz.TypeTrueFalse,
		},
		{
			name: "multi select",
			text: "NewQuestion,MS\nTitle,Primes\nQuestionText,Select primes.\nOption,1,2\nOption,-1,4",
			typ:  quiz.TypeMultiSelect,
		},
		{
			name: "ordering",
			text: "NewQuestion,O\nTitle,Steps\nQuestionText,Order the steps.\nItem,Wake up\nItem,Get dressed",
			typ:  quiz.TypeOrdering,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := parseOne(t, tt.text)
			if q.Type != tt.typ {
				t.Errorf("Type = %q, want %q", q.Type, tt.typ)
			}
			if q.Title == "" || q.Text == "" {
				t.Errorf("base fields not populated: %+v", q)
			}
			if q.Points != 1 {
				t.Errorf("Points = %d, want default 1", q.Points)
			}
		})
	}
}

func TestParse_QuotedNewlineRoundTrips(t *testing.T) {
	q := parseOne(t, "NewQuestion,WR\nTitle,Essay\nQuestionText,\"Line one\nLine two\"")
	if q.Text != "Line one\nLine two" {
		t.Errorf("Text = %q, want embedded newline preserved", q.Text)
	}
}

func TestParse_UnknownTypeCodeDiscardsBlock(t *testing.T) {
	text := strings.Join([]string{
		"NewQuestion,ZZ",
		"Title,Broken",
		"QuestionText,Should vanish.",
		"NewQuestion,MC",
		"Title,Valid",
		"QuestionText,Still parsed?",
		"Option,100,Yes",
	}, "\n")

	res := Parse(text)
	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(res.Quiz.Questions))
	}
	if res.Quiz.Questions[0].Title != "Valid" {
		t.Errorf("surviving question = %q, want the valid block", res.Quiz.Questions[0].Title)
	}
	if len(res.Warnings()) == 0 {
		t.Error("expected a warning for the unknown type code")
	}
}

func TestParse_MatchingPairsJoinByChoiceNo(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,M",
		"Title,Capitals",
		"QuestionText,Match capital to country.",
		"Choice,1,Ottawa",
		"Match,1,Canada",
		"Choice,2,Canberra",
		"Match,2,Australia",
	}, "\n"))

	want := []quiz.Pair{
		{ChoiceNo: 1, ChoiceText: "Ottawa", MatchText: "Canada"},
		{ChoiceNo: 2, ChoiceText: "Canberra", MatchText: "Australia"},
	}
	if !reflect.DeepEqual(q.Matching.Pairs, want) {
		t.Errorf("Pairs = %+v, want %+v", q.Matching.Pairs, want)
	}
}

func TestParse_MatchWithoutChoiceCreatesPlaceholder(t *testing.T) {
	res := Parse(strings.Join([]string{
		"NewQuestion,M",
		"Title,Capitals",
		"QuestionText,Match.",
		"Choice,1,Ottawa",
		"Match,1,Canada",
		"Match,3,Australia",
	}, "\n"))

	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(res.Quiz.Questions))
	}
	pairs := res.Quiz.Questions[0].Matching.Pairs
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %+v", pairs)
	}
	repaired := pairs[1]
	if repaired.ChoiceNo != 3 || repaired.MatchText != "Australia" {
		t.Errorf("repaired pair = %+v", repaired)
	}
	if repaired.ChoiceText != DefaultOptions().PlaceholderChoiceText {
		t.Errorf("ChoiceText = %q, want placeholder", repaired.ChoiceText)
	}
	if len(res.Warnings()) != 1 {
		t.Errorf("expected exactly one warning, got %v", res.Diagnostics)
	}
}

func TestParse_FeedbackAttachesToLastOption(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,MC",
		"Title,Capitals",
		"QuestionText,Capital of France?",
		"Option,100,Paris",
		"Option,0,Berlin",
		`Feedback,"Great job"`,
	}, "\n"))

	opts := q.MultipleChoice.Options
	if opts[1].Feedback != "Great job" {
		t.Errorf("last option feedback = %q, want %q", opts[1].Feedback, "Great job")
	}
	if opts[0].Feedback != "" {
		t.Errorf("first option feedback = %q, want empty", opts[0].Feedback)
	}
	if q.Feedback != "" {
		t.Errorf("general feedback = %q, want empty", q.Feedback)
	}
}

func TestParse_FeedbackFallsBackToQuestion(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,MC",
		"Title,Capitals",
		"QuestionText,Capital of France?",
		"Feedback,Read chapter 3",
		"Option,100,Paris",
	}, "\n"))

	if q.Feedback != "Read chapter 3" {
		t.Errorf("general feedback = %q", q.Feedback)
	}
}

func TestParse_TrueFalseFeedbackTieBreak(t *testing.T) {
	// Feedback lands on whichever side was defined later, here False.
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,TF",
		"Title,Sky",
		"QuestionText,The sky is green.",
		"True,0",
		"False,100",
		"Feedback,Look outside",
	}, "\n"))

	if q.TrueFalse.False.Feedback != "Look outside" {
		t.Errorf("false feedback = %q", q.TrueFalse.False.Feedback)
	}
	if q.TrueFalse.True.Feedback != "" {
		t.Errorf("true feedback = %q, want empty", q.TrueFalse.True.Feedback)
	}

	// Reversed definition order flips the winner.
	q = parseOne(t, strings.Join([]string{
		"NewQuestion,TF",
		"Title,Sky",
		"QuestionText,The sky is green.",
		"False,100",
		"True,0",
		"Feedback,Look outside",
	}, "\n"))
	if q.TrueFalse.True.Feedback != "Look outside" {
		t.Errorf("true feedback = %q", q.TrueFalse.True.Feedback)
	}
}

func TestParse_TrueFalseLaterRowOverwrites(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,TF",
		"Title,Sky",
		"QuestionText,The sky is blue.",
		"True,50",
		"True,100",
		"False,0",
	}, "\n"))

	if q.TrueFalse.True.Percent != 100 {
		t.Errorf("true percent = %d, want overwrite to 100", q.TrueFalse.True.Percent)
	}
}

func TestParse_IncompleteQuestionDropped(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing title", "NewQuestion,MC\nQuestionText,Pick.\nOption,100,A"},
		{"missing body", "NewQuestion,MC\nTitle,Pick\nOption,100,A"},
		{"mc without options", "NewQuestion,MC\nTitle,Pick\nQuestionText,Pick."},
		{"tf missing false", "NewQuestion,TF\nTitle,Sky\nQuestionText,Blue.\nTrue,100"},
		{"sa without answer", "NewQuestion,SA\nTitle,Capital\nQuestionText,Name it."},
		{"ordering without items", "NewQuestion,O\nTitle,Steps\nQuestionText,Order."},
		{"matching incomplete pair", "NewQuestion,M\nTitle,Cap\nQuestionText,Match.\nChoice,1,Ottawa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.text)
			if len(res.Quiz.Questions) != 0 {
				t.Errorf("expected question dropped, got %+v", res.Quiz.Questions)
			}
			if len(res.Warnings()) == 0 {
				t.Error("expected a dropped-question warning")
			}
		})
	}
}

func TestParse_SharedFields(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,MC",
		"ID,Q-17",
		"Title,Capitals",
		"QuestionText,Capital of France?",
		"Points,3",
		"Difficulty,7",
		"Image,map.png",
		"Hint,It hosts the Louvre",
		"Option,100,Paris",
	}, "\n"))

	if q.ID != "Q-17" || q.Points != 3 || q.Difficulty != 7 ||
		q.Image != "map.png" || q.Hint != "It hosts the Louvre" {
		t.Errorf("shared fields = %+v", q)
	}
}

func TestParse_BadNumbersFallBackToDefaults(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,SA",
		"Title,Capital",
		"QuestionText,Name it.",
		"Points,three",
		"Difficulty,hard",
		"InputBox,x,y",
		"Answer,100,Paris,REGEXP",
	}, "\n"))

	if q.Points != 1 {
		t.Errorf("Points = %d, want default 1", q.Points)
	}
	if q.Difficulty != 0 {
		t.Errorf("Difficulty = %d, want default 0", q.Difficulty)
	}
	if q.ShortAnswer.Rows != 1 || q.ShortAnswer.Cols != 40 {
		t.Errorf("input box = %dx%d, want 1x40", q.ShortAnswer.Rows, q.ShortAnswer.Cols)
	}
	if q.ShortAnswer.Eval != quiz.EvalRegexp {
		t.Errorf("Eval = %q, want regexp (case-insensitive flag)", q.ShortAnswer.Eval)
	}
}

func TestParse_MismatchedKeyIgnored(t *testing.T) {
	res := Parse(strings.Join([]string{
		"NewQuestion,MC",
		"Title,Pick",
		"QuestionText,Pick one.",
		"InputBox,5,50",
		"Option,100,A",
	}, "\n"))

	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(res.Quiz.Questions))
	}
	q := res.Quiz.Questions[0]
	if q.MultipleChoice == nil || len(q.MultipleChoice.Options) != 1 {
		t.Fatalf("question corrupted by mismatched key: %+v", q)
	}
	if len(res.Warnings()) != 1 {
		t.Errorf("expected one mismatch warning, got %v", res.Diagnostics)
	}
}

func TestParse_LeadingBoilerplateIgnored(t *testing.T) {
	res := Parse(strings.Join([]string{
		"// exported by the course tool",
		"Title,orphan row",
		"NewQuestion,MC",
		"Title,Pick",
		"QuestionText,Pick one.",
		"Option,100,A",
	}, "\n"))

	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(res.Quiz.Questions))
	}
	if res.Quiz.Questions[0].Title != "Pick" {
		t.Errorf("Title = %q, orphan row leaked in", res.Quiz.Questions[0].Title)
	}
}

func TestParse_NoQuestionsIsNotAnError(t *testing.T) {
	res := Parse("just,some,cells\nmore,cells")
	if len(res.Quiz.Questions) != 0 {
		t.Errorf("expected empty quiz, got %+v", res.Quiz.Questions)
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := strings.Join([]string{
		"NewQuestion,MC",
		"Title,Pick",
		"QuestionText,Pick one.",
		"Option,100,Paris",
		"Option,0,Berlin",
		"NewQuestion,M",
		"Title,Match",
		"QuestionText,Match.",
		"Match,2,Early match",
		"Choice,1,Ottawa",
		"Match,1,Canada",
	}, "\n")

	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first.Quiz, second.Quiz) {
		t.Error("parsing the same buffer twice gave different quizzes")
	}
	if !reflect.DeepEqual(first.Diagnostics, second.Diagnostics) {
		t.Error("parsing the same buffer twice gave different diagnostics")
	}
}

func TestParse_OptionsOverrideDefaults(t *testing.T) {
	opts := Options{
		DefaultPoints:         5,
		InputBoxRows:          2,
		InputBoxCols:          80,
		PlaceholderChoiceText: "(missing)",
	}
	res := ParseWithOptions(strings.Join([]string{
		"NewQuestion,SA",
		"Title,Capital",
		"QuestionText,Name it.",
		"Answer,100,Paris",
		"NewQuestion,M",
		"Title,Match",
		"QuestionText,Match.",
		"Match,1,Canada",
	}, "\n"), opts)

	qs := res.Quiz.Questions
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d (%v)", len(qs), res.Diagnostics)
	}
	if qs[0].Points != 5 {
		t.Errorf("Points = %d, want configured 5", qs[0].Points)
	}
	if qs[0].ShortAnswer.Rows != 2 || qs[0].ShortAnswer.Cols != 80 {
		t.Errorf("input box = %dx%d, want 2x80", qs[0].ShortAnswer.Rows, qs[0].ShortAnswer.Cols)
	}
	if qs[1].Matching.Pairs[0].ChoiceText != "(missing)" {
		t.Errorf("placeholder = %q", qs[1].Matching.Pairs[0].ChoiceText)
	}
}

func TestParse_MSOptionFields(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,MS",
		"Title,Primes",
		"QuestionText,Select primes.",
		"Scoring,RightAnswersLimitedSelections",
		"Option,1,<b>2</b>,html,Prime indeed,html",
		"Option,-1,4",
	}, "\n"))

	ms := q.MultiSelect
	if ms.Scoring != "RightAnswersLimitedSelections" {
		t.Errorf("Scoring = %q", ms.Scoring)
	}
	first := ms.Options[0]
	if first.Weight != 1 || !first.HTML || first.Feedback != "Prime indeed" || !first.FeedbackHTML {
		t.Errorf("first option = %+v", first)
	}
	if ms.Options[1].Weight != -1 {
		t.Errorf("second option weight = %d", ms.Options[1].Weight)
	}
}

func TestParse_OrderingItemFeedbackHTMLReadsSixthCell(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NewQuestion,O",
		"Title,Steps",
		"QuestionText,Order.",
		"Item,Wake up,html,Still asleep?,,html",
	}, "\n"))

	it := q.Ordering.Items[0]
	if !it.HTML || it.Feedback != "Still asleep?" || !it.FeedbackHTML {
		t.Errorf("item = %+v", it)
	}

	// The fifth cell must not be mistaken for the feedback-html flag.
	q = parseOne(t, strings.Join([]string{
		"NewQuestion,O",
		"Title,Steps",
		"QuestionText,Order.",
		"Item,Wake up,,Feedback text,html",
	}, "\n"))
	if q.Ordering.Items[0].FeedbackHTML {
		t.Error("feedback-html flag read from the fifth cell, want sixth")
	}
}

func TestParse_RowKeysAreCaseInsensitive(t *testing.T) {
	q := parseOne(t, strings.Join([]string{
		"NEWQUESTION,mc",
		"title,Pick",
		"QUESTIONTEXT,Pick one.",
		"OPTION,100,Paris",
	}, "\n"))

	if q.Type != quiz.TypeMultipleChoice || q.Title != "Pick" {
		t.Errorf("case-insensitive keys not honored: %+v", q)
	}
}
