package cmd

import (
	"fmt"
	"os"

	"github.com/ignaciourbina/quizview/internal/config"
	"github.com/ignaciourbina/quizview/internal/loader"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
	"github.com/ignaciourbina/quizview/internal/render"
	"github.com/ignaciourbina/quizview/internal/screens/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Parse a quiz CSV and preview it",
	Long: `Parse a quiz CSV export and open the interactive preview.

With --plain the questions are printed to stdout instead, and the
parser diagnostics go to stderr. The exit code is 0 even when rows were
skipped; only an unreadable file fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreviewCmd,
}

func init() {
	previewCmd.Flags().Bool("plain", false, "Print plain text instead of opening the TUI")
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	src, err := loader.Load(args[0], cfg.MaxFileBytes)
	if err != nil {
		return err
	}
	res := quizcsv.ParseWithOptions(src.Text, cfg.ParserOptions())

	if plain {
		fmt.Print(render.Quiz(res.Quiz))
		for _, d := range res.Diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		return nil
	}

	return runApp(cmd, preview.New(src.Name, res))
}
