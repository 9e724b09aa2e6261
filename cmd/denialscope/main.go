package main

import (
	"os"

	"github.com/denialscope-dev/denialscope/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
