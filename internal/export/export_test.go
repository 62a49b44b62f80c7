package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

const everyVariantCSV = `NewQuestion,WR
Title,Essay
QuestionText,Discuss.
AnswerKey,prose
NewQuestion,SA
Title,Capital
QuestionText,Capital of France?
Answer,100,Paris
NewQuestion,M
Title,Capitals
QuestionText,Match.
Choice,1,Ottawa
Match,1,Canada
NewQuestion,MC
Title,Pick
QuestionText,Pick one.
Option,100,Paris
NewQuestion,TF
Title,Sky
QuestionText,Blue.
True,100
False,0
NewQuestion,MS
Title,Primes
QuestionText,Select.
Option,1,2
NewQuestion,O
Title,Steps
QuestionText,Order.
Item,Wake up`

func TestMarshal_EveryVariantPassesSchema(t *testing.T) {
	res := quizcsv.Parse(everyVariantCSV)
	require.Len(t, res.Quiz.Questions, 7)

	data, err := Marshal(NewDocument("quiz.csv", res))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "quiz.csv", doc.Source)
	require.Len(t, doc.Quiz.Questions, 7)
}

func TestMarshal_AcceptsZeroInputBox(t *testing.T) {
	res := quizcsv.Parse(`NewQuestion,SA
Title,Capital
QuestionText,Capital of France?
InputBox,0,40
Answer,100,Paris`)
	require.Len(t, res.Quiz.Questions, 1)
	require.Equal(t, 0, res.Quiz.Questions[0].ShortAnswer.Rows)

	// The schema must accept whatever the parser stored: box dimensions
	// are unvalidated passthrough.
	_, err := Marshal(NewDocument("zero-box.csv", res))
	require.NoError(t, err)
}

func TestMarshal_EmptyQuizIsValid(t *testing.T) {
	res := quizcsv.Parse("no,questions,here")
	data, err := Marshal(NewDocument("empty.csv", res))
	require.NoError(t, err)
	require.Contains(t, string(data), `"questions": []`)
}

func TestMarshal_DiagnosticsCarried(t *testing.T) {
	res := quizcsv.Parse("NewQuestion,ZZ\nTitle,Broken")
	data, err := Marshal(NewDocument("bad.csv", res))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Diagnostics)
	require.Equal(t, "warning", doc.Diagnostics[0].Severity)
}

func TestValidate_RejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing quiz", `{"source":"x.csv"}`},
		{"question missing title", `{"quiz":{"questions":[{"type":"MC","text":"b","points":1}]}}`},
		{"bad type code", `{"quiz":{"questions":[{"type":"XX","title":"t","text":"b","points":1}]}}`},
		{"bad severity", `{"quiz":{"questions":[]},"diagnostics":[{"severity":"fatal","message":"m"}]}`},
		{"not json", `{"quiz":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.raw))
			require.Error(t, err)
			if tt.name == "not json" {
				require.True(t, strings.Contains(err.Error(), "invalid JSON"))
			}
		})
	}
}
