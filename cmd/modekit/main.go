// Package main provides the entry point for the modekit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/modekit/modekit/cmd/modekit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
