package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ignaciourbina/quizview/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("quizview", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res, err := checker.Check(ctx, version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build, skipping release check.")
			return nil
		}
		if err != nil {
			return err
		}

		if res.UpdateAvailable {
			fmt.Printf("A newer release is available: %s\n", res.LatestVersion)
		} else {
			fmt.Println("Already the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Also check GitHub for a newer release")
}
