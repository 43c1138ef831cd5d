// Package main is the entry point for the nem CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thoreinstein/nem/cmd/nem/commands"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/logging"
)

func main() {
	// Replaced once flags are parsed.
	slog.SetDefault(logging.Default())

	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Silent() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr)
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.Code(err))
}
