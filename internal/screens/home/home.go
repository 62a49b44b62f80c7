// Package home implements the entry screen: open a quiz file by path,
// browse the library, or quit.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ignaciourbina/quizview/internal/config"
	"github.com/ignaciourbina/quizview/internal/loader"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
	"github.com/ignaciourbina/quizview/internal/router"
	"github.com/ignaciourbina/quizview/internal/screen"
	"github.com/ignaciourbina/quizview/internal/screens/library"
	"github.com/ignaciourbina/quizview/internal/screens/preview"
	"github.com/ignaciourbina/quizview/internal/store"
	"github.com/ignaciourbina/quizview/internal/ui/components"
	"github.com/ignaciourbina/quizview/internal/ui/layout"
	"github.com/ignaciourbina/quizview/internal/ui/theme"
)

// Options carries the home screen dependencies.
type Options struct {
	Config  config.Config
	Quizzes store.QuizRepo
}

type mode int

const (
	modeMenu mode = iota
	modePath
)

// HomeScreen is the application entry screen.
type HomeScreen struct {
	opts  Options
	menu  components.Menu
	input components.TextInput
	mode  mode
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(opts Options) *HomeScreen {
	s := &HomeScreen{opts: opts}

	items := []components.MenuItem{
		{
			Label:  "Open quiz file",
			Detail: "parse a CSV export and preview it",
			Action: func() tea.Cmd {
				s.mode = modePath
				s.input = components.NewTextInput("path/to/quiz.csv", 512)
				return s.input.Init()
			},
		},
		{
			Label:    "Library",
			Detail:   "browse imported quizzes",
			Disabled: opts.Quizzes == nil,
			Action: func() tea.Cmd {
				return router.PushCmd(library.New(opts.Quizzes))
			},
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	if s.mode == modePath {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Cancel"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mode == modePath {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				s.mode = modeMenu
				return s, nil
			case "enter":
				return s, s.openFile(strings.TrimSpace(s.input.Value()))
			}
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// openFile loads and parses the file at path, pushing the preview
// screen on success and surfacing the rejection reason inline on
// failure.
func (s *HomeScreen) openFile(path string) tea.Cmd {
	if path == "" {
		s.input.SetError("enter a file path")
		return nil
	}

	src, err := loader.Load(path, s.opts.Config.MaxFileBytes)
	if err != nil {
		s.input.SetError(err.Error())
		return nil
	}

	res := quizcsv.ParseWithOptions(src.Text, s.opts.Config.ParserOptions())
	if len(res.Quiz.Questions) == 0 {
		s.input.SetError("no valid questions found in " + src.Name)
		return nil
	}

	s.mode = modeMenu
	return router.PushCmd(preview.New(src.Name, res))
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quizview"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Preview quiz CSV exports in your terminal"))
	b.WriteString("\n\n")

	switch s.mode {
	case modePath:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  Quiz file to open:"))
		b.WriteString("\n\n  ")
		b.WriteString(s.input.View())
	default:
		b.WriteString(s.menu.View())
	}

	return b.String()
}
