package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/dispatch"
	"github.com/thoreinstein/nem/internal/errors"
)

// exitError maps domain errors to exit codes and suggestions. Errors that
// already carry an exit code are returned unchanged.
func exitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, alias.ErrNoStore):
		return errors.NewUserError(err, "Run: nem init (or create --init)")
	case errors.Is(err, alias.ErrNotFound):
		return errors.NewUserError(err, "Run: nem list")
	case errors.Is(err, alias.ErrCodeCollision):
		return errors.NewUserError(err, "choose another code")
	case errors.Is(err, alias.ErrInvalidCode):
		return errors.NewUserError(err, "codes must be a single word")
	case errors.Is(err, alias.ErrStoreExists):
		return errors.NewUserError(err, "use --force to replace it")
	case errors.Is(err, alias.ErrWrite):
		return errors.NewSystemError(err, "check the file's permissions")
	case errors.Is(err, dispatch.ErrUnknownCode):
		return errors.NewUserError(err, "Run: nem list")
	case errors.Is(err, dispatch.ErrExecutableNotFound):
		return errors.NewExitErrorWithSuggestion(err, errors.ExitCommandNotFound, "Run: nem doctor")
	case errors.Is(err, dispatch.ErrChildProcess):
		return errors.NewSystemError(err, "")
	case errors.Is(err, dispatch.ErrEmptyCommand):
		return errors.NewUserError(err, "Run: nem open")
	default:
		return errors.NewExitError(err, errors.ExitUser)
	}
}

// withUsage wraps a cobra argument validator so arity errors carry the
// command's usage line as a suggestion.
func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewUserError(err, "usage: "+cmd.UseLine())
		}
		return nil
	}
}
