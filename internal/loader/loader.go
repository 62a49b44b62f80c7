// Package loader acquires quiz files for the parser: it reads a whole
// file into memory and rejects it up front when it cannot possibly be a
// quiz export, so the parser never sees a partial or oversized buffer.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize is the input size ceiling applied when the caller does
// not configure one.
const DefaultMaxSize int64 = 5 << 20 // 5 MiB

var (
	// ErrTooLarge means the file exceeds the configured size ceiling.
	ErrTooLarge = errors.New("file exceeds size limit")

	// ErrUnsupportedType means the file extension is not a known quiz
	// export format.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Source is a fully read quiz file, ready for parsing.
type Source struct {
	// Name is the base name of the file, for display and diagnostics.
	Name string

	// Text is the complete file content.
	Text string
}

// Load reads the file at path, enforcing the extension and size checks.
// maxSize <= 0 selects DefaultMaxSize.
func Load(path string, maxSize int64) (Source, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".txt" {
		return Source{}, fmt.Errorf("%w: %q (want .csv or .txt)", ErrUnsupportedType, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Source{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxSize {
		return Source{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Source{Name: filepath.Base(path), Text: string(data)}, nil
}
