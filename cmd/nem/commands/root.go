// Package commands implements the CLI commands for nem.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nem/cmd"
	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/config"
	"github.com/thoreinstein/nem/internal/dispatch"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// strictFlag holds the value of the --strict flag.
var strictFlag bool

// dirFlag holds the value of the -C/--dir flag.
var dirFlag string

// settings holds the loaded application settings.
var settings *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false,
		"fail on unknown codes instead of listing")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "",
		"start store discovery in `dir` instead of the working directory")

	// Everything after the code belongs to the aliased command.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("nem version {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	settings, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "nem [code] [args...]",
	Short: "Directory-scoped command aliases",
	Long: `nem keeps short codes for long commands in .nem.toml files.

Store files are looked up from the working directory up to the filesystem
root, so aliases defined in a parent directory work in every directory
below it. A code defined in a nearer file shadows the same code further up.

Run "nem <code> [args...]" to execute an alias; the arguments are appended
to the alias's own. Global flags must come before the code.`,
	Example: `  # Register an alias in the nearest store (code "cbr")
  nem create cargo build --release

  # Run it with extra arguments
  nem cbr --locked

  # List every visible alias
  nem

  See Also: nem init, nem list, nem doctor`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runRoot,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "drop one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("NEM_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat), "use --log-format text or json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports settings that failed to load. help, version and
// config still run so the user can inspect the problem.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "config", "path", "get":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentSettings returns the loaded settings or the defaults.
func currentSettings() *config.Config {
	if settings != nil {
		return settings
	}
	return &config.Config{StoreFile: alias.DefaultFileName}
}

// startDir returns the directory discovery starts from.
func startDir() (string, error) {
	if dirFlag != "" {
		return dirFlag, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "getting working directory"), "")
	}
	return wd, nil
}

// loadChain discovers the store chain for the current invocation.
func loadChain(cmd *cobra.Command) (*alias.Chain, error) {
	dir, err := startDir()
	if err != nil {
		return nil, err
	}

	s := currentSettings()
	chain, err := alias.Discover(dir,
		alias.WithFileName(s.StoreFile),
		alias.WithGlobalStore(s.GlobalStore),
		alias.WithLogger(logging.FromContext(cmd.Context())),
	)
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	return chain, nil
}

// persist writes every store in the chain back to disk.
func persist(chain *alias.Chain) error {
	if err := chain.Persist(); err != nil {
		return exitError(err)
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runList(cmd, nil)
	}

	chain, err := loadChain(cmd)
	if err != nil {
		return err
	}

	stdio := dispatch.Stdio{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	d := dispatch.New(chain,
		dispatch.WithStrict(strictFlag || currentSettings().Strict),
		dispatch.WithStdio(stdio),
		dispatch.WithLogger(logging.FromContext(cmd.Context())),
		dispatch.WithFallback(func(context.Context) error {
			return printChain(cmd.OutOrStdout(), chain)
		}),
	)

	status, err := d.Dispatch(cmd.Context(), args[0], args[1:])
	if err != nil {
		return exitError(err)
	}
	if status != 0 {
		return errors.NewExitError(nil, status)
	}
	return nil
}

// reservedNames returns every subcommand name and alias, which always
// win over a code of the same name.
func reservedNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
		names = append(names, c.Aliases...)
	}
	return append(names, "help")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
