package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quizzes saved in the local library",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open library: %w", err)
		}
		defer st.Close()

		entries, err := st.Quizzes().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Library is empty. Import a quiz with: quizview import <file>")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-30s %3d question(s)  %s  [%s]\n",
				e.ImportedAt.Format("2006-01-02"), e.Title,
				e.QuestionCount, typeBreakdown(e.TypeCounts), e.UID)
		}
		return nil
	},
}

// typeBreakdown formats per-type counts like "3 MC, 2 TF, 1 SA".
func typeBreakdown(counts map[string]int) string {
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%d %s", counts[t], t))
	}
	return strings.Join(parts, ", ")
}
