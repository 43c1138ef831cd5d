package alias

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/pkg/fileutil"
)

// FormatVersion is written to store files that do not carry a version yet.
const FormatVersion = "0.0"

// DefaultFileName is the store file looked up in every directory.
const DefaultFileName = ".nem.toml"

// Store is the decoded contents of one store file. It owns its path: the
// file it was loaded from is the file Save writes.
type Store struct {
	Version string  `toml:"version"`
	Entries []Entry `toml:"cmds"`

	path string
}

// NewStore returns an empty store bound to path. Nothing is written until Save.
func NewStore(path string) *Store {
	return &Store{
		Version: FormatVersion,
		Entries: []Entry{},
		path:    path,
	}
}

// Load reads and decodes the store file at path. Read failures are
// returned as-is (os.ErrNotExist survives errors.Is); malformed content or
// a record without cmd or code yields a *DecodeError.
func Load(path string) (*Store, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Decode(path, data)
}

// Decode parses data as a store bound to path.
func Decode(path string, data []byte) (*Store, error) {
	s := &Store{path: path}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	for i, e := range s.Entries {
		switch {
		case strings.TrimSpace(e.Command) == "":
			return nil, &DecodeError{Path: path, Err: errors.Newf("record %d: missing cmd", i+1)}
		case e.Code == "":
			return nil, &DecodeError{Path: path, Err: errors.Newf("record %d: missing code", i+1)}
		}
	}
	if s.Entries == nil {
		s.Entries = []Entry{}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.Entries) }

// Codes returns every code in entry order.
func (s *Store) Codes() []string {
	codes := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		codes[i] = e.Code
	}
	return codes
}

// Sort orders entries by command text. The sort is stable, so running it
// on sorted input changes nothing.
func (s *Store) Sort() {
	slices.SortStableFunc(s.Entries, func(a, b Entry) int {
		return cmp.Compare(a.Command, b.Command)
	})
}

// Add appends e. Uniqueness is the caller's concern.
func (s *Store) Add(e Entry) {
	s.Entries = append(s.Entries, e)
}

// Lookup returns a copy of the first entry with code.
func (s *Store) Lookup(code string) (Entry, bool) {
	if e, ok := s.FindByCode(code); ok {
		return *e, true
	}
	return Entry{}, false
}

// FindByCode returns the first entry with code. The pointer aliases the
// store's slice and is valid until the next Add, RemoveByCode or Sort.
func (s *Store) FindByCode(code string) (*Entry, bool) {
	i := s.index(code)
	if i < 0 {
		return nil, false
	}
	return &s.Entries[i], true
}

// RemoveByCode removes and returns the first entry with code.
func (s *Store) RemoveByCode(code string) (Entry, bool) {
	i := s.index(code)
	if i < 0 {
		return Entry{}, false
	}
	e := s.Entries[i]
	s.Entries = slices.Delete(s.Entries, i, i+1)
	return e, true
}

// EditCode relabels the entry holding oldCode. It does not check newCode
// for collisions; see Chain.Relabel.
func (s *Store) EditCode(oldCode, newCode string) (*Entry, bool) {
	e, ok := s.FindByCode(oldCode)
	if !ok {
		return nil, false
	}
	e.Code = newCode
	return e, true
}

// SetDescription replaces the description of the entry holding code.
func (s *Store) SetDescription(code, desc string) (*Entry, bool) {
	e, ok := s.FindByCode(code)
	if !ok {
		return nil, false
	}
	e.Description = desc
	return e, true
}

// Encode renders the store in its on-disk form.
func (s *Store) Encode() ([]byte, error) {
	return fileutil.MarshalTOML(s.onDisk())
}

// Save overwrites the backing file with the current entries. Failures
// are reported as *WriteError.
func (s *Store) Save() error {
	if err := fileutil.AtomicWriteTOML(s.path, s.onDisk()); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// onDisk returns the copy that is encoded: a blank version becomes the
// current one and no entries encode as an empty cmds array.
func (s *Store) onDisk() *Store {
	out := *s
	if out.Version == "" {
		out.Version = FormatVersion
	}
	if out.Entries == nil {
		out.Entries = []Entry{}
	}
	return &out
}

func (s *Store) index(code string) int {
	return slices.IndexFunc(s.Entries, func(e Entry) bool {
		return e.Code == code
	})
}
