package quizcsv

import (
	"reflect"
	"testing"
)

func TestSplitRecords_PlainLines(t *testing.T) {
	got := SplitRecords("a,b\nc,d\ne,f")
	want := []string{"a,b", "c,d", "e,f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitRecords = %v, want %v", got, want)
	}
}

func TestSplitRecords_QuotedNewlineIsOneRecord(t *testing.T) {
	got := SplitRecords("QuestionText,\"Line one\nLine two\"\nPoints,2")
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(got), got)
	}
	if got[0] != "QuestionText,\"Line one\nLine two\"" {
		t.Errorf("first record = %q", got[0])
	}
}

func TestSplitRecords_EscapedQuoteDoesNotToggle(t *testing.T) {
	// The "" inside the quoted span must not close it, or the embedded
	// newline would split the record.
	got := SplitRecords("Title,\"say \"\"hi\"\"\nand bye\"")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(got), got)
	}
}

func TestSplitRecords_TrimsAndDropsEmpty(t *testing.T) {
	got := SplitRecords("  a,b  \r\n\n   \n\nc,d\n")
	want := []string{"a,b", "c,d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitRecords = %v, want %v", got, want)
	}
}

func TestSplitRecords_EmptyInput(t *testing.T) {
	if got := SplitRecords(""); len(got) != 0 {
		t.Errorf("expected no records, got %v", got)
	}
}

func TestSplitRecords_UnterminatedQuoteConsumesRest(t *testing.T) {
	// Documented limitation: an unbalanced quote keeps the rest of the
	// buffer in one record.
	got := SplitRecords("Title,\"open\nPoints,2\nHint,h")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(got), got)
	}
}
