package main

import (
	"os"

	"github.com/ignaciourbina/quizview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
