package main

import (
	"fmt"
	"os"

	"file-indexer/internal/cli"
	"file-indexer/internal/memory"
)

func main() {
	// Configure memory limits before the workers start allocating buffers
	mem := memory.ConfigureFromEnv()

	if err := cli.NewRootCommand(mem).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
