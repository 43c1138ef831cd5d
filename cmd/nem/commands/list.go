package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/errors"
)

// Output formats for list.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	listLong   bool
	listFormat string
)

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false,
		"show descriptions, source files and shadowed entries in a table")
	listCmd.Flags().StringVarP(&listFormat, "format", "o", formatText,
		"output format: text, table, json, yaml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "cl"},
	Short:   "List every alias visible from here",
	Long: `List the aliases of every store file from the working directory up to
the filesystem root, nearest file first. Each file's entries are printed
under its path as "code<TAB>command".

Running nem without arguments, or with a code that is not defined, prints
the same listing.`,
	Example: `  # Plain listing
  nem list

  # Table with descriptions and shadowed entries
  nem list -l

  # Machine-readable
  nem list -o json

  See Also: nem find, nem doctor`,
	Args: withUsage(cobra.NoArgs),
	RunE: runList,
}

// listItem is one row of the structured list formats.
type listItem struct {
	Code        string `json:"code" yaml:"code"`
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	File        string `json:"file" yaml:"file"`
	Shadowed    bool   `json:"shadowed" yaml:"shadowed"`
}

func runList(cmd *cobra.Command, _ []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	format := listFormat
	if listLong && format == formatText {
		format = formatTable
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatText:
		return printChain(out, chain)
	case formatTable:
		return printTable(out, chain.Visible())
	case formatJSON:
		return printJSON(out, listItems(chain.Visible()))
	case formatYAML:
		return printYAML(out, listItems(chain.Visible()))
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format), "use text, table, json or yaml")
	}
}

// printChain writes every store nearest first as a "file: <path>" line
// followed by one "code<TAB>command" line per entry.
func printChain(w io.Writer, chain *alias.Chain) error {
	if chain.Empty() {
		slog.Default().Info("no store file found", "start", chain.StartDir())
		return nil
	}
	for _, s := range chain.Stores() {
		if _, err := fmt.Fprintf(w, "file: %s\n", s.Path()); err != nil {
			return errors.Wrap(err, "writing list")
		}
		for _, e := range s.Entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", color.CyanString(e.Code), e.Command); err != nil {
				return errors.Wrap(err, "writing list")
			}
		}
	}
	return nil
}

func listItems(matches []alias.Match) []listItem {
	items := make([]listItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, listItem{
			Code:        m.Entry.Code,
			Command:     m.Entry.Command,
			Description: m.Entry.Description,
			File:        m.Store.Path(),
			Shadowed:    m.Shadowed,
		})
	}
	return items
}

func printTable(w io.Writer, matches []alias.Match) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"CODE", "COMMAND", "DESCRIPTION", "FILE"})

	for _, m := range matches {
		row := table.Row{m.Entry.Code, truncate(m.Entry.Command, 60), m.Entry.Description, m.Store.Path()}
		if m.Shadowed {
			row[0] = text.FgHiBlack.Sprint(m.Entry.Code + " (shadowed)")
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d aliases", len(matches)), "", ""})
	t.Render()
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return errors.Wrap(enc.Close(), "encoding YAML")
}
