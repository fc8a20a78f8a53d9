package main

import (
	"os"

	"github.com/checkmatch-dev/checkmatch/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
