package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad_ReadsWholeFile(t *testing.T) {
	path := writeFile(t, "quiz.csv", "NewQuestion,MC\nTitle,Pick")
	src, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Name != "quiz.csv" {
		t.Errorf("Name = %q", src.Name)
	}
	if src.Text != "NewQuestion,MC\nTitle,Pick" {
		t.Errorf("Text = %q", src.Text)
	}
}

func TestLoad_RejectsUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "quiz.pdf", "not a quiz")
	_, err := Load(path, 0)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestLoad_RejectsOversizedFile(t *testing.T) {
	path := writeFile(t, "quiz.csv", strings.Repeat("a", 100))
	_, err := Load(path, 50)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), 0)
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
