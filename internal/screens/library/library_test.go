package library

import (
	"testing"

	"github.com/ignaciourbina/quizview/internal/quiz"
	"github.com/ignaciourbina/quizview/internal/router"
	"github.com/ignaciourbina/quizview/internal/screens/preview"
	"github.com/ignaciourbina/quizview/internal/store"
)

func TestOpenedEntryKeepsDiagnostics(t *testing.T) {
	entry := &store.Entry{
		Summary: store.Summary{UID: "u1", Source: "algebra.csv", Title: "algebra"},
		Quiz: quiz.Quiz{Questions: []quiz.Question{{
			Type:            quiz.TypeWrittenResponse,
			Title:           "Essay",
			Text:            "Discuss.",
			Points:          1,
			WrittenResponse: &quiz.WrittenResponse{},
		}}},
		Diagnostics: []string{"warning: record 9: unknown question type \"ZZ\", record discarded"},
	}

	s := New(nil)
	_, cmd := s.Update(openedMsg{entry: entry})
	if cmd == nil {
		t.Fatal("opening an entry produced no command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected a push message, got %T", msg)
	}
	pv, ok := push.Screen.(*preview.PreviewScreen)
	if !ok {
		t.Fatalf("expected a preview screen, got %T", push.Screen)
	}

	var hasToggle bool
	for _, h := range pv.KeyHints() {
		if h.Key == "d" {
			hasToggle = true
		}
	}
	if !hasToggle {
		t.Error("preview of a stored entry lost its diagnostics toggle")
	}
}
