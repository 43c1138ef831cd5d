package dispatch

import (
	"fmt"

	"github.com/thoreinstein/nem/internal/errors"
)

// Sentinel errors for dispatch failures.
var (
	// ErrUnknownCode indicates the code resolves to no entry (strict mode only).
	ErrUnknownCode = errors.New("unknown code")

	// ErrExecutableNotFound indicates the command's first word is not on PATH.
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrChildProcess indicates the child could not be started.
	ErrChildProcess = errors.New("failed to start command")

	// ErrEmptyCommand indicates the entry's command has no words.
	ErrEmptyCommand = errors.New("empty command")
)

// ExecutableNotFoundError names the executable that PATH lookup missed.
type ExecutableNotFoundError struct {
	Name string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrExecutableNotFound, e.Name)
}

func (e *ExecutableNotFoundError) Unwrap() error { return e.Err }

// Is matches ErrExecutableNotFound.
func (e *ExecutableNotFoundError) Is(target error) bool { return target == ErrExecutableNotFound }

// ChildProcessError is returned when the resolved executable fails to start.
// A child that starts and exits non-zero is not an error.
type ChildProcessError struct {
	Path string
	Err  error
}

func (e *ChildProcessError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrChildProcess, e.Path, e.Err)
}

func (e *ChildProcessError) Unwrap() error { return e.Err }

// Is matches ErrChildProcess.
func (e *ChildProcessError) Is(target error) bool { return target == ErrChildProcess }
