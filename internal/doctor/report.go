package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for doctor reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes doctor reports.
type Reporter struct {
	out     io.Writer
	format  Format
	verbose bool
}

// NewReporter creates a new Reporter. In text format only warnings and
// errors are shown unless verbose is set.
func NewReporter(out io.Writer, format Format, verbose bool) *Reporter {
	return &Reporter{
		out:     out,
		format:  format,
		verbose: verbose,
	}
}

// Report writes the report to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(report *Report) error {
	shown := 0
	for _, res := range report.Results {
		if !r.verbose && res.Status != SeverityError && res.Status != SeverityWarning {
			continue
		}
		shown++
		r.printResult(res)
	}

	if shown > 0 {
		fmt.Fprintln(r.out)
	}

	if !report.HasErrors() && !report.HasWarnings() {
		fmt.Fprintln(r.out, color.GreenString("✓ No problems found"))
	}
	fmt.Fprintf(r.out, "Summary: %d passed, %d info, %s, %s\n",
		report.Summary.Passed,
		report.Summary.Info,
		color.YellowString("%d warnings", report.Summary.Warnings),
		color.RedString("%d errors", report.Summary.Errors),
	)
	return nil
}

func (r *Reporter) printResult(res *CheckResult) {
	c := statusColor(res.Status)
	fmt.Fprintf(r.out, "%s [%s] %s: %s\n",
		c.Sprint(statusIcon(res.Status)), res.Category, c.Sprint(res.Name), res.Message)

	dim := color.New(color.FgHiBlack)
	for _, f := range res.Findings {
		fmt.Fprintf(r.out, "  • %s\n", f)
	}
	if res.FixHint != "" && (res.Status == SeverityError || res.Status == SeverityWarning) {
		fmt.Fprintf(r.out, "  %s\n", dim.Sprintf("hint: %s", res.FixHint))
	}
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return "✓"
	case SeverityInfo:
		return "ℹ"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✗"
	default:
		return "?"
	}
}

func statusColor(s Severity) *color.Color {
	switch s {
	case SeverityPass:
		return color.New(color.FgGreen)
	case SeverityWarning:
		return color.New(color.FgYellow)
	case SeverityError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}
