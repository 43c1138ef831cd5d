package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/errors"
)

var (
	createCode string
	createDesc string
	createInit bool
)

func init() {
	createCmd.Flags().StringVar(&createCode, "code", "",
		"use this code instead of generating one")
	createCmd.Flags().StringVarP(&createDesc, "desc", "d", "",
		"description shown by list -l and matched by find")
	createCmd.Flags().BoolVar(&createInit, "init", false,
		"create a store in the working directory if none exists")
	// Words after the first positional argument belong to the command.
	createCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:     "create [flags] <word> [word...]",
	Aliases: []string{"cc"},
	Short:   "Add an alias to the nearest store",
	Long: `Add the command made of the given words to the nearest store file.

Unless --code is given, the code is the first letter of each word, with
leading dashes skipped; "1" is appended until the code is unused anywhere
in the chain and is not a subcommand name. Flags for create must come before the command's words.

When no store file exists from the working directory up to the root,
create fails unless --init is given or auto_init is set.`,
	Example: `  # Code "cbr"
  nem create cargo build --release

  # Pick the code yourself
  nem create --code up docker compose up -d

  # Bootstrap a store in this directory
  nem create --init make test

  See Also: nem edit, nem describe, nem init`,
	Args: withUsage(cobra.MinimumNArgs(1)),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	command := strings.Join(args, " ")
	words := strings.Fields(command)
	if len(words) == 0 {
		return errors.NewUserError(errors.New("command is empty"), "usage: "+cmd.UseLine())
	}

	if chain.Empty() && (createInit || currentSettings().AutoInit) {
		s, err := chain.InitStore(chain.StartDir())
		if err != nil {
			return exitError(err)
		}
		slog.Info("initialized store", "path", s.Path())
	}

	code := createCode
	if code == "" {
		// A generated code must stay reachable from the root command.
		code = alias.GenerateCode(words, append(chain.Codes(), reservedNames()...))
		if code == "" {
			return errors.NewUserError(errors.Wrapf(alias.ErrInvalidCode, "cannot derive a code from %q", command), "pass --code")
		}
	} else {
		if err := alias.ValidateCode(code); err != nil {
			return exitError(errors.Wrapf(err, "%q", code))
		}
		if existing, ok := chain.FindByCode(code); ok {
			return exitError(&alias.CollisionError{Code: code, Command: existing.Command})
		}
	}

	entry := alias.Entry{Command: command, Code: code, Description: createDesc}
	s, err := chain.AddEntry(entry)
	if err != nil {
		return exitError(err)
	}

	chain.Sort()
	if err := persist(chain); err != nil {
		return err
	}

	slog.Info("created alias", "code", code, "store", s.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, command)
	return nil
}
