package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <code>",
	Aliases: []string{"rm", "cr"},
	Short:   "Delete an alias",
	Long: `Delete the alias with <code> from the nearest store that holds it.
A same-named code further up the chain becomes visible again.`,
	Example: `  nem remove cbr

  See Also: nem list`,
	Args: withUsage(cobra.ExactArgs(1)),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	entry, s, err := chain.RemoveByCode(args[0])
	if err != nil {
		return exitError(err)
	}

	chain.Sort()
	if err := persist(chain); err != nil {
		return err
	}

	slog.Info("removed alias", "code", entry.Code, "store", s.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\t%s\n", entry.Code, entry.Command)
	return nil
}
