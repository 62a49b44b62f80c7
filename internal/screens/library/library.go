// Package library lists quizzes imported into the local database and
// reopens them in the preview.
package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ignaciourbina/quizview/internal/router"
	"github.com/ignaciourbina/quizview/internal/screen"
	"github.com/ignaciourbina/quizview/internal/screens/preview"
	"github.com/ignaciourbina/quizview/internal/store"
	"github.com/ignaciourbina/quizview/internal/ui/layout"
	"github.com/ignaciourbina/quizview/internal/ui/theme"
)

const repoTimeout = 5 * time.Second

type entriesMsg struct {
	entries []store.Summary
	err     error
}

type openedMsg struct {
	entry *store.Entry
	err   error
}

type deletedMsg struct {
	err error
}

// LibraryScreen shows imported quizzes, newest first.
type LibraryScreen struct {
	repo    store.QuizRepo
	entries []store.Summary
	cursor  int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen. repo must be non-nil.
func New(repo store.QuizRepo) *LibraryScreen {
	return &LibraryScreen{repo: repo, loading: true}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *LibraryScreen) Title() string {
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "x", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		entries, err := s.repo.List(ctx)
		return entriesMsg{entries: entries, err: err}
	}
}

func (s *LibraryScreen) open(uid string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		entry, err := s.repo.Get(ctx, uid)
		return openedMsg{entry: entry, err: err}
	}
}

func (s *LibraryScreen) delete(uid string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		return deletedMsg{err: s.repo.Delete(ctx, uid)}
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.entries = msg.entries
		if s.cursor >= len(s.entries) {
			s.cursor = max(len(s.entries)-1, 0)
		}
		return s, nil

	case openedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		pv := preview.NewStored(msg.entry.Source, msg.entry.Quiz, msg.entry.Diagnostics)
		return s, router.PushCmd(pv)

	case deletedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.entries) > 0 {
				s.errMsg = ""
				return s, s.open(s.entries[s.cursor].UID)
			}
		case "x":
			if len(s.entries) > 0 {
				s.errMsg = ""
				return s, s.delete(s.entries[s.cursor].UID)
			}
		}
	}
	return s, nil
}

func (s *LibraryScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading library..."))
	}
	if len(s.entries) == 0 && s.errMsg == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Library is empty. Import a quiz with: quizview import <file>"))
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, e := range s.entries {
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + e.Title))
		} else {
			b.WriteString("    " + theme.Unselected.Render(e.Title))
		}
		b.WriteString("  " + theme.Hint.Render(summaryDetail(e)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// summaryDetail builds the dim annotation after a library row.
func summaryDetail(e store.Summary) string {
	return fmt.Sprintf("%d question(s), imported %s", e.QuestionCount,
		e.ImportedAt.Format("2006-01-02"))
}
