package cmd

import (
	"fmt"
	"os"

	"github.com/ignaciourbina/quizview/internal/config"
	"github.com/ignaciourbina/quizview/internal/loader"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Parse a quiz CSV and save it to the local library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		src, err := loader.Load(args[0], cfg.MaxFileBytes)
		if err != nil {
			return err
		}
		res := quizcsv.ParseWithOptions(src.Text, cfg.ParserOptions())
		if len(res.Quiz.Questions) == 0 {
			return fmt.Errorf("no valid questions found in %s", src.Name)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open library: %w", err)
		}
		defer st.Close()

		uid, err := st.Quizzes().Save(cmd.Context(), src.Name, res)
		if err != nil {
			return err
		}

		for _, d := range res.Diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		fmt.Printf("Imported %s: %d question(s), id %s\n",
			src.Name, len(res.Quiz.Questions), uid)
		return nil
	},
}
