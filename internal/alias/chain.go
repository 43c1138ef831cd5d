package alias

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/nem/internal/errors"
)

// Match is an entry together with the store that owns it.
type Match struct {
	Entry Entry
	Store *Store
	// Shadowed is set when a nearer store holds the same code.
	Shadowed bool
}

// Skipped records a store file that Discover could not use.
type Skipped struct {
	Path string
	Err  error
}

// Chain is the ordered list of stores visible from a directory, nearest first.
type Chain struct {
	stores   []*Store
	skipped  []Skipped
	startDir string
	fileName string
}

type discoverOptions struct {
	fileName    string
	globalStore string
	logger      *slog.Logger
}

// Option configures Discover.
type Option func(*discoverOptions)

// WithFileName overrides the store file name looked up in each directory.
func WithFileName(name string) Option {
	return func(o *discoverOptions) {
		if name != "" {
			o.fileName = name
		}
	}
}

// WithGlobalStore appends the store at path as the farthest store when it
// exists and the walk did not already reach it.
func WithGlobalStore(path string) Option {
	return func(o *discoverOptions) {
		o.globalStore = path
	}
}

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *discoverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewChain builds a chain from stores already ordered nearest first.
func NewChain(stores ...*Store) *Chain {
	c := &Chain{fileName: DefaultFileName}
	c.stores = append(c.stores, stores...)
	if len(stores) > 0 {
		c.startDir = filepath.Dir(stores[0].Path())
	}
	return c
}

// Discover walks from startDir to the filesystem root, loading every store
// file it finds. Directories without a file contribute nothing. Files that
// cannot be read or decoded are logged, recorded in Skipped and left out.
func Discover(startDir string, opts ...Option) (*Chain, error) {
	o := discoverOptions{
		fileName: DefaultFileName,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving start directory %s", startDir)
	}

	c := &Chain{startDir: abs, fileName: o.fileName}
	seen := make(map[string]bool)

	for dir := abs; ; {
		path := filepath.Join(dir, o.fileName)
		seen[path] = true
		c.tryLoad(path, o.logger)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if o.globalStore != "" {
		global, err := filepath.Abs(o.globalStore)
		if err == nil && !seen[global] {
			c.tryLoad(global, o.logger)
		}
	}

	o.logger.Debug("discovered stores", "start", abs, "stores", len(c.stores), "skipped", len(c.skipped))
	return c, nil
}

func (c *Chain) tryLoad(path string, logger *slog.Logger) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return
	case err != nil:
		c.skip(path, err, logger)
		return
	case info.IsDir():
		c.skip(path, errors.Newf("%s is a directory", path), logger)
		return
	}

	s, err := Load(path)
	if err != nil {
		c.skip(path, err, logger)
		return
	}
	logger.Debug("loaded store", "path", path, "entries", s.Len())
	c.stores = append(c.stores, s)
}

func (c *Chain) skip(path string, err error, logger *slog.Logger) {
	logger.Warn("skipping store file", "path", path, "error", err)
	c.skipped = append(c.skipped, Skipped{Path: path, Err: err})
}

// Stores returns the stores nearest first.
func (c *Chain) Stores() []*Store { return c.stores }

// Skipped returns the store files Discover left out.
func (c *Chain) Skipped() []Skipped { return c.skipped }

// StartDir returns the directory the chain was discovered from.
func (c *Chain) StartDir() string { return c.startDir }

// Empty reports whether no store is visible.
func (c *Chain) Empty() bool { return len(c.stores) == 0 }

// Nearest returns the store closest to the start directory.
func (c *Chain) Nearest() (*Store, bool) {
	if len(c.stores) == 0 {
		return nil, false
	}
	return c.stores[0], true
}

// Codes concatenates the codes of every store, nearest first.
func (c *Chain) Codes() []string {
	var codes []string
	for _, s := range c.stores {
		codes = append(codes, s.Codes()...)
	}
	return codes
}

// FindByCode returns the entry for code from the nearest store holding it.
func (c *Chain) FindByCode(code string) (*Entry, bool) {
	for _, s := range c.stores {
		if e, ok := s.FindByCode(code); ok {
			return e, true
		}
	}
	return nil, false
}

// Resolve is FindByCode that also reports the owning store.
func (c *Chain) Resolve(code string) (Match, bool) {
	for _, s := range c.stores {
		if e, ok := s.Lookup(code); ok {
			return Match{Entry: e, Store: s}, true
		}
	}
	return Match{}, false
}

// InitStore makes sure a store exists in dir, creating an empty in-memory
// one when needed. A created store is placed by distance from the start
// directory, so a store for the start directory becomes the nearest.
// It is written on the next Persist.
func (c *Chain) InitStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", dir)
	}
	path := filepath.Join(abs, c.fileName)
	for _, s := range c.stores {
		if s.Path() == path {
			return s, nil
		}
	}

	s := NewStore(path)
	d := depth(abs)
	i := 0
	for ; i < len(c.stores); i++ {
		if depth(filepath.Dir(c.stores[i].Path())) < d {
			break
		}
	}
	c.stores = append(c.stores[:i], append([]*Store{s}, c.stores[i:]...)...)
	return s, nil
}

func depth(dir string) int {
	n := 0
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return n
		}
		dir = parent
		n++
	}
}

// AddEntry appends e to the nearest store and returns that store.
// It fails with ErrNoStore when the chain is empty.
func (c *Chain) AddEntry(e Entry) (*Store, error) {
	s, ok := c.Nearest()
	if !ok {
		return nil, errors.Wrapf(ErrNoStore, "searched from %s", c.startDir)
	}
	s.Add(e)
	return s, nil
}

// RemoveByCode removes code from the nearest store holding it.
func (c *Chain) RemoveByCode(code string) (Entry, *Store, error) {
	for _, s := range c.stores {
		if e, ok := s.RemoveByCode(code); ok {
			return e, s, nil
		}
	}
	return Entry{}, nil, errors.Wrapf(ErrNotFound, "code %q", code)
}

// EditCode relabels oldCode in the nearest store holding it. It performs
// no collision check; use Relabel for the checked variant.
func (c *Chain) EditCode(oldCode, newCode string) (*Entry, error) {
	for _, s := range c.stores {
		if e, ok := s.EditCode(oldCode, newCode); ok {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "code %q", oldCode)
}

// Relabel changes oldCode to newCode after checking that newCode is valid
// and does not resolve anywhere in the chain. Nothing changes on failure.
func (c *Chain) Relabel(oldCode, newCode string) (*Entry, error) {
	if err := ValidateCode(newCode); err != nil {
		return nil, errors.Wrapf(err, "%q", newCode)
	}
	if existing, ok := c.FindByCode(newCode); ok {
		return nil, &CollisionError{Code: newCode, Command: existing.Command}
	}
	return c.EditCode(oldCode, newCode)
}

// Describe sets the description of the entry holding code.
func (c *Chain) Describe(code, desc string) (*Entry, error) {
	for _, s := range c.stores {
		if e, ok := s.SetDescription(code, desc); ok {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "code %q", code)
}

// Visible lists every entry nearest first, flagging entries hidden by a
// nearer store with the same code.
func (c *Chain) Visible() []Match {
	var out []Match
	seen := make(map[string]bool)
	for _, s := range c.stores {
		for _, e := range s.Entries {
			out = append(out, Match{Entry: e, Store: s, Shadowed: seen[e.Code]})
			seen[e.Code] = true
		}
	}
	return out
}

// Search returns visible, unshadowed entries whose code, command or
// description contains query (case-insensitive).
func (c *Chain) Search(query string) []Match {
	q := strings.ToLower(query)
	var out []Match
	for _, m := range c.Visible() {
		if m.Shadowed {
			continue
		}
		if strings.Contains(strings.ToLower(m.Entry.Code), q) ||
			strings.Contains(strings.ToLower(m.Entry.Command), q) ||
			strings.Contains(strings.ToLower(m.Entry.Description), q) {
			out = append(out, m)
		}
	}
	return out
}

// Sort sorts every store independently.
func (c *Chain) Sort() {
	for _, s := range c.stores {
		s.Sort()
	}
}

// Persist saves every store, nearest first, stopping at the first
// failure. Stores written before the failure stay written.
func (c *Chain) Persist() error {
	for _, s := range c.stores {
		if err := s.Save(); err != nil {
			return err
		}
	}
	return nil
}
