// Package main provides the entry point for the sortlist CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/bradenaw/sortedlist/cmd/sortlist/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
