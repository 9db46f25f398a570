package main

import (
	"os"

	"rentora/internal/interfaces/cli/worker"
)

func main() {
	cmd := worker.NewCommand()
	if len(os.Args) > 1 {
		cmd.SetArgs(os.Args[1:])
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
