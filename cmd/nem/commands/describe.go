package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:     "describe <code> [text...]",
	Aliases: []string{"desc"},
	Short:   "Set an alias's description",
	Long: `Set the description of the alias with <code>. With no text the
description is cleared.`,
	Example: `  nem describe cbr optimized build

  See Also: nem list -l, nem find`,
	Args: withUsage(cobra.MinimumNArgs(1)),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	described, err := chain.Describe(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return exitError(err)
	}
	entry := *described

	chain.Sort()
	if err := persist(chain); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.Code, entry.Command, entry.Description)
	return nil
}
