package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/internal/dispatch"
	"github.com/thoreinstein/nem/internal/doctor"
	"github.com/thoreinstein/nem/internal/errors"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false,
		"show passing checks too")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the store chain for problems",
	Long: `Run health checks over every store file visible from here.

Checks for files that cannot be decoded, duplicate codes within a file,
codes that cannot be typed, codes shadowed by nearer files, codes hidden
by a subcommand of the same name, executables missing from PATH and
store files with unexpected permissions. Nothing is modified.

Exit codes:
  0 - No errors (warnings may be present)
  1 - Errors present`,
	Args: withUsage(cobra.NoArgs),
	RunE: runDoctor,
}

// errDoctorErrors is returned when the report holds errors.
var errDoctorErrors = errors.New("doctor found errors")

func runDoctor(cmd *cobra.Command, _ []string) error {
	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	runner := doctor.NewRunner(doctor.DefaultChecks(dispatch.PathResolver{}, reservedNames())...)
	report := runner.Run(chain)

	format := doctor.FormatText
	if doctorJSON {
		format = doctor.FormatJSON
	}
	if err := doctor.NewReporter(cmd.OutOrStdout(), format, doctorAll).Report(report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewUserError(errDoctorErrors, "see the hints above")
	}
	return nil
}
