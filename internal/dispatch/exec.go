package dispatch

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/thoreinstein/nem/internal/errors"
)

// Resolver locates an executable by name.
type Resolver interface {
	LookPath(name string) (string, error)
}

// Runner starts a process and waits for it. The returned int is the
// child's exit status; the error is non-nil only when the child could not
// be run at all.
type Runner interface {
	Run(ctx context.Context, path string, args []string, stdio Stdio) (int, error)
}

// Stdio holds the streams handed to the child.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio returns the current process's standard streams.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// PathResolver resolves names with exec.LookPath.
type PathResolver struct{}

// LookPath implements Resolver.
func (PathResolver) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// waitDelay bounds how long Run waits for the child after an interrupt.
const waitDelay = 5 * time.Second

// ExecRunner runs children with os/exec.
type ExecRunner struct{}

// Run implements Runner. On context cancellation the child is sent an
// interrupt first and killed if it has not exited after waitDelay.
func (ExecRunner) Run(ctx context.Context, path string, args []string, stdio Stdio) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr), nil
	}
	return 0, err
}

// exitStatus reports a child killed by a signal as 128+signo, the way
// shells do.
func exitStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
