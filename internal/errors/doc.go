// Package errors provides error handling conventions for the nem CLI.
//
// It re-exports the constructors and inspectors of
// [github.com/cockroachdb/errors] so call sites need a single import, and
// defines the [ExitError] type that carries a process exit code and an
// optional suggestion from the failing command up to main.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed, or an unknown code fell back to list
//   - ExitUser (1): bad arguments, code collision, unknown code, no store
//   - ExitSystem (2): a store could not be written, a child failed to start
//   - ExitCommandNotFound (127): the alias executable is not on PATH
//
// A dispatched child's own non-zero status is propagated as an ExitError
// with a nil Err, which main treats as silent:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Err != nil {
//	        fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
