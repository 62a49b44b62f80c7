package quizcsv

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{
			name:   "plain cells",
			record: "Option,100,Paris",
			want:   []string{"Option", "100", "Paris"},
		},
		{
			name:   "cells are trimmed",
			record: "Title , My Quiz ",
			want:   []string{"Title", "My Quiz"},
		},
		{
			name:   "quoted comma survives",
			record: `Option,100,"Paris, France"`,
			want:   []string{"Option", "100", "Paris, France"},
		},
		{
			name:   "doubled quotes unescape",
			record: `Title,"say ""hi"""`,
			want:   []string{"Title", `say "hi"`},
		},
		{
			name:   "enclosing quotes stripped once",
			record: `QuestionText,"<b>bold</b>"`,
			want:   []string{"QuestionText", "<b>bold</b>"},
		},
		{
			name:   "embedded newline in quoted cell",
			record: "QuestionText,\"Line one\nLine two\"",
			want:   []string{"QuestionText", "Line one\nLine two"},
		},
		{
			name:   "empty cells kept",
			record: "True,100,,html",
			want:   []string{"True", "100", "", "html"},
		},
		{
			name:   "single cell",
			record: "NewQuestion",
			want:   []string{"NewQuestion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFields(tt.record)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitFields(%q) = %#v, want %#v", tt.record, got, tt.want)
			}
		})
	}
}

func TestCell_ShortRowIsDefault(t *testing.T) {
	cells := SplitFields("Points")
	if got := cell(cells, 1); got != "" {
		t.Errorf("missing cell should read as empty, got %q", got)
	}
}
