package dispatch

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/logging"
)

// Fallback runs when a code resolves to nothing and the dispatcher is not
// strict. The CLI passes its list action.
type Fallback func(ctx context.Context) error

// Dispatcher resolves codes against a chain and runs the matching command.
type Dispatcher struct {
	chain    *alias.Chain
	resolver Resolver
	runner   Runner
	fallback Fallback
	strict   bool
	stdio    Stdio
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithResolver replaces the PATH lookup.
func WithResolver(r Resolver) Option {
	return func(d *Dispatcher) { d.resolver = r }
}

// WithRunner replaces process execution.
func WithRunner(r Runner) Option {
	return func(d *Dispatcher) { d.runner = r }
}

// WithFallback sets the action run for unknown codes.
func WithFallback(f Fallback) Option {
	return func(d *Dispatcher) { d.fallback = f }
}

// WithStrict makes unknown codes fail with ErrUnknownCode.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) { d.strict = strict }
}

// WithStdio sets the streams the child inherits.
func WithStdio(s Stdio) Option {
	return func(d *Dispatcher) { d.stdio = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New creates a Dispatcher over chain using PATH lookup, os/exec and the
// process's own standard streams unless overridden.
func New(chain *alias.Chain, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		chain:    chain,
		resolver: PathResolver{},
		runner:   ExecRunner{},
		stdio:    OSStdio(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Dispatch resolves code and runs its command with forwarded appended to
// the entry's default arguments. It returns the child's exit status.
//
// A miss runs the fallback and returns 0, or fails with ErrUnknownCode
// when strict. Nothing is spawned when the executable is not on PATH.
func (d *Dispatcher) Dispatch(ctx context.Context, code string, forwarded []string) (int, error) {
	m, ok := d.chain.Resolve(code)
	if !ok {
		if d.strict {
			return 0, errors.Wrapf(ErrUnknownCode, "%q", code)
		}
		d.logger.Info("unknown code, listing", "code", code)
		if d.fallback == nil {
			return 0, nil
		}
		return 0, d.fallback(ctx)
	}

	words := m.Entry.Words()
	if len(words) == 0 {
		return 0, errors.Wrapf(ErrEmptyCommand, "code %q in %s", code, m.Store.Path())
	}

	path, err := d.resolver.LookPath(words[0])
	if err != nil {
		return 0, &ExecutableNotFoundError{Name: words[0], Err: err}
	}

	args := BuildArgs(words[1:], forwarded)

	d.logger.Debug("dispatching",
		"code", code,
		"command", m.Entry.Command,
		"path", path,
		"store", m.Store.Path(),
	)
	d.logger.Log(ctx, logging.LevelTrace, "child args", "args", strings.Join(args, " "))

	status, err := d.runner.Run(ctx, path, args, d.stdio)
	if err != nil {
		return 0, &ChildProcessError{Path: path, Err: err}
	}
	d.logger.Debug("child exited", "code", code, "status", status)
	return status, nil
}

// BuildArgs returns defaults followed by forwarded in a new slice.
func BuildArgs(defaults, forwarded []string) []string {
	args := make([]string, 0, len(defaults)+len(forwarded))
	args = append(args, defaults...)
	return append(args, forwarded...)
}
