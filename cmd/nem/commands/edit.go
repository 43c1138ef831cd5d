package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:     "edit <code> <new-code>",
	Aliases: []string{"ce"},
	Short:   "Change an alias's code",
	Long: `Rename the code of an alias. The store that holds <code> (nearest
first) is changed; other stores are left alone.

The rename is refused when <new-code> already resolves anywhere in the
chain, including files further up.`,
	Example: `  nem edit cbr build

  See Also: nem create, nem remove`,
	Args: withUsage(cobra.ExactArgs(2)),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	oldCode, newCode := args[0], args[1]
	relabeled, err := chain.Relabel(oldCode, newCode)
	if err != nil {
		return exitError(err)
	}
	// Sort moves entries under the pointer.
	entry := *relabeled

	chain.Sort()
	if err := persist(chain); err != nil {
		return err
	}

	slog.Info("relabeled alias", "from", oldCode, "to", newCode)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Code, entry.Command)
	return nil
}
