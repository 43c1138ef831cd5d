package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/config"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/paths"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show nem settings",
	Long: `Show the effective settings as YAML.

Settings come from config.yaml in the nem config directory, overridden by
NEM_* environment variables (e.g. NEM_STRICT=true).`,
	Example: `  nem config
  nem config get store_file
  nem config path

  See Also: nem doctor`,
	Args: withUsage(cobra.NoArgs),
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Long:  `Print the effective value of one setting.`,
	Args:  withUsage(cobra.ExactArgs(1)),
	RunE:  runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  withUsage(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), paths.ConfigFile())
		return nil
	},
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	out := cmd.OutOrStdout()
	if used := config.FileUsed(); used != "" {
		fmt.Fprintf(out, "# %s\n", used)
	} else {
		fmt.Fprintf(out, "# defaults (no %s)\n", paths.ConfigFile())
	}
	return printYAML(out, currentSettings())
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	val, ok := config.Get(args[0])
	if !ok {
		return errors.NewUserError(errors.Newf("unknown setting %q", args[0]), "Run: nem config")
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}
