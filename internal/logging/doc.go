// Package logging provides structured logging for the nem CLI using slog.
//
// Text output goes through [Handler], a colorized single-line handler for
// terminals; JSON output uses the standard library handler. Attribute
// values that look like credentials are masked, since alias commands
// regularly carry tokens on their command line.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("loaded store", "path", path)
//
// # Verbosity
//
// [LevelFromVerbosity] maps the count of -v flags to a level: none shows
// warnings, -v info, -vv debug, -vvv [LevelTrace].
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework:
//
//	logger := logging.ForTest(t)
package logging
