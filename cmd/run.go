package cmd

import (
	"fmt"
	"os"

	"github.com/ignaciourbina/quizview/internal/app"
	"github.com/ignaciourbina/quizview/internal/config"
	"github.com/ignaciourbina/quizview/internal/screen"
	"github.com/ignaciourbina/quizview/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the library database at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(dbPath)
}

// runApp loads config, opens the library store, and launches the TUI.
// A missing library is not fatal: the app runs with library features
// disabled.
func runApp(cmd *cobra.Command, initial screen.Screen) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := app.Options{Config: cfg, Initial: initial}

	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Quiz library unavailable:", err)
	} else {
		defer st.Close()
		opts.Quizzes = st.Quizzes()
	}

	return app.Run(opts)
}
