package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/paths"
)

var (
	initForce  bool
	initGlobal bool
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"replace an existing store file with an empty one")
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false,
		"create the global store instead")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an empty store file",
	Long: `Create an empty store file in dir (default: the working directory).

Aliases created below dir will go to this file until a nearer one exists.
An existing file is left untouched unless --force is given.`,
	Example: `  # Store for the current project
  nem init

  # User-wide store, searched after every directory
  nem init --global

  See Also: nem create, nem open`,
	Args: withUsage(cobra.MaximumNArgs(1)),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := initTarget(args)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return exitError(errors.Wrapf(alias.ErrStoreExists, "%s", path))
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating directory"), "")
	}

	if err := alias.NewStore(path).Save(); err != nil {
		return exitError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

// initTarget returns the store file path init should create.
func initTarget(args []string) (string, error) {
	if initGlobal {
		global := currentSettings().GlobalStore
		if global == "" {
			return "", errors.NewUserError(errors.New("global store is disabled"), "set global_store in "+paths.ConfigFile())
		}
		return global, nil
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else {
		d, err := startDir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.NewUserError(errors.Wrapf(err, "resolving %s", dir), "")
	}
	return filepath.Join(abs, currentSettings().StoreFile), nil
}
