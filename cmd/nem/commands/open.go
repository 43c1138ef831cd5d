package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/editor"
	"github.com/thoreinstein/nem/internal/errors"
)

var openGlobal bool

func init() {
	openCmd.Flags().BoolVarP(&openGlobal, "global", "g", false,
		"open the global store instead")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Edit the nearest store file",
	Long: `Open the nearest store file in your editor.

The editor is the "editor" setting, else $VISUAL, else $EDITOR, else nano
or vi.`,
	Example: `  nem open
  EDITOR="code -w" nem open

  See Also: nem doctor`,
	Args: withUsage(cobra.NoArgs),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, _ []string) error {
	path, err := openTarget(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)

	ed := editor.New(currentSettings().Editor)
	ed.Stdin = cmd.InOrStdin()
	ed.Stdout = cmd.OutOrStdout()
	ed.Stderr = cmd.ErrOrStderr()
	if err := ed.Open(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR or the editor setting")
	}
	return nil
}

func openTarget(cmd *cobra.Command) (string, error) {
	if openGlobal {
		global := currentSettings().GlobalStore
		if global == "" {
			return "", errors.NewUserError(errors.New("global store is disabled"), "set global_store")
		}
		return global, nil
	}

	chain, err := loadChain(cmd)
	if err != nil {
		return "", err
	}
	s, ok := chain.Nearest()
	if !ok {
		// Broken files are skipped by discovery but are what needs editing.
		if skipped := chain.Skipped(); len(skipped) > 0 {
			return skipped[0].Path, nil
		}
		return "", exitError(errors.Wrapf(alias.ErrNoStore, "searched from %s", chain.StartDir()))
	}
	if skipped := chain.Skipped(); len(skipped) > 0 && nearer(skipped[0].Path, s.Path()) {
		return skipped[0].Path, nil
	}
	return s.Path(), nil
}

// nearer reports whether store file a lives below the directory of b.
func nearer(a, b string) bool {
	dirA, dirB := filepath.Dir(a), filepath.Dir(b)
	return dirA != dirB && strings.HasPrefix(dirA, strings.TrimSuffix(dirB, string(filepath.Separator))+string(filepath.Separator))
}
