package cmd

import (
	"fmt"
	"os"

	"github.com/ignaciourbina/quizview/internal/config"
	"github.com/ignaciourbina/quizview/internal/export"
	"github.com/ignaciourbina/quizview/internal/loader"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Parse a quiz CSV and emit schema-validated JSON",
	Long: `Parse a quiz CSV export and write it as JSON, including the parser
diagnostics. The output is validated against the export schema before
being written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		src, err := loader.Load(args[0], cfg.MaxFileBytes)
		if err != nil {
			return err
		}
		res := quizcsv.ParseWithOptions(src.Text, cfg.ParserOptions())

		data, err := export.Marshal(export.NewDocument(src.Name, res))
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if out == "" || out == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
}
