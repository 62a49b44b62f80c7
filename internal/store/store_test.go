package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func parseSample(t *testing.T) *quizcsv.Result {
	t.Helper()
	res := quizcsv.Parse("NewQuestion,MC\nTitle,Pick\nQuestionText,Pick one.\nOption,100,Paris\nOption,0,Berlin")
	if len(res.Quiz.Questions) != 1 {
		t.Fatalf("sample parse failed: %v", res.Diagnostics)
	}
	return res
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestQuizRepo_SaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	res := parseSample(t)
	uid, err := repo.Save(ctx, "geography.csv", res)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if uid == "" {
		t.Fatal("expected a non-empty UID")
	}

	entry, err := repo.Get(ctx, uid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Title != "geography" {
		t.Errorf("Title = %q, want %q", entry.Title, "geography")
	}
	if entry.QuestionCount != 1 {
		t.Errorf("QuestionCount = %d, want 1", entry.QuestionCount)
	}
	if !reflect.DeepEqual(entry.Quiz, res.Quiz) {
		t.Errorf("stored quiz differs:\n got %+v\nwant %+v", entry.Quiz, res.Quiz)
	}
}

func TestQuizRepo_ListAndTypeCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	if _, err := repo.Save(ctx, "a.csv", parseSample(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, "b.csv", parseSample(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].TypeCounts["MC"] != 1 {
		t.Errorf("TypeCounts = %v", list[0].TypeCounts)
	}
}

func TestQuizRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	uid, err := repo.Save(ctx, "a.csv", parseSample(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, uid); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, uid); err == nil {
		t.Error("expected Get after Delete to fail")
	}
	if err := repo.Delete(ctx, uid); err == nil {
		t.Error("expected second Delete to fail")
	}
}
