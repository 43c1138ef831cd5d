// Package editor launches the user's preferred text editor on a store file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/nem/internal/errors"
)

// Editor opens files in an external editor.
type Editor struct {
	// Command overrides the environment, e.g. the editor setting.
	// It may carry arguments ("code -w").
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an Editor attached to the process's standard streams.
func New(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Open launches the editor on path and waits for it to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	words := strings.Fields(e.command())
	if len(words) == 0 {
		return errors.New("no editor configured")
	}

	args := append(words[1:len(words):len(words)], path)
	cmd := exec.CommandContext(ctx, words[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", words[0])
	}
	return nil
}

func (e *Editor) command() string {
	if e.Command != "" {
		return e.Command
	}
	return detectEditor()
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $VISUAL → $EDITOR → nano → vi
func detectEditor() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// vi is required by POSIX.
	return "vi"
}
