package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/dispatch"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/logging"
)

var (
	findInteractive bool
	findPrintOnly   bool
)

func init() {
	findCmd.Flags().BoolVarP(&findInteractive, "interactive", "i", false,
		"pick an alias with a fuzzy finder and run it")
	findCmd.Flags().BoolVarP(&findPrintOnly, "print", "p", false,
		"with -i, print the chosen alias instead of running it")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:     "find <query...>",
	Aliases: []string{"search"},
	Short:   "Search aliases by code, command or description",
	Long: `Print the visible aliases whose code, command or description contains
the query, ignoring case. Shadowed entries are not searched.

With -i, an interactive fuzzy finder lists every visible alias (the query,
if any, pre-fills the prompt) and the chosen alias is run.`,
	Example: `  nem find docker
  nem find -i
  nem find -i -p build

  See Also: nem list`,
	RunE: runFind,
}

// pickEntry selects one of matches interactively. Tests replace it.
var pickEntry = func(matches []alias.Match, query string) (int, error) {
	return fuzzyfinder.Find(
		matches,
		func(i int) string {
			return fmt.Sprintf("%s\t%s", matches[i].Entry.Code, matches[i].Entry.Command)
		},
		fuzzyfinder.WithQuery(query),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			m := matches[i]
			return fmt.Sprintf("Code: %s\nCommand: %s\nFile: %s\n\nDescription:\n%s",
				m.Entry.Code,
				m.Entry.Command,
				m.Store.Path(),
				m.Entry.Description,
			)
		}),
	)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if !findInteractive && query == "" {
		return errors.NewUserError(errors.New("missing query"), "usage: "+cmd.UseLine())
	}

	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	if findInteractive {
		return runFindInteractive(cmd, chain, query)
	}

	matches := chain.Search(query)
	if len(matches) == 0 {
		return exitError(errors.Wrapf(alias.ErrNotFound, "no alias matches %q", query))
	}
	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Entry.Code, m.Entry.Command)
	}
	return nil
}

func runFindInteractive(cmd *cobra.Command, chain *alias.Chain, query string) error {
	var matches []alias.Match
	for _, m := range chain.Visible() {
		if !m.Shadowed {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No aliases found.")
		return nil
	}

	idx, err := pickEntry(matches, query)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.NewSystemError(errors.Wrap(err, "interactive search failed"), "")
	}

	chosen := matches[idx].Entry
	if findPrintOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", chosen.Code, chosen.Command)
		return nil
	}

	d := dispatch.New(chain,
		dispatch.WithStdio(dispatch.Stdio{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}),
		dispatch.WithLogger(logging.FromContext(cmd.Context())),
	)
	status, err := d.Dispatch(cmd.Context(), chosen.Code, nil)
	if err != nil {
		return exitError(err)
	}
	if status != 0 {
		return errors.NewExitError(nil, status)
	}
	return nil
}
