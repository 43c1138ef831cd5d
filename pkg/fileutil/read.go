package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/nem/internal/errors"
)

// MaxFileSize caps a store file at 1 MiB. Hand-written alias files are a
// few kilobytes; anything larger is almost certainly not a store.
const MaxFileSize = 1 << 20

// ErrFileTooLarge is matched with errors.Is on reads refused for size.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit returns the contents of path, or ErrFileTooLarge
// (wrapped with the path) when it holds more than MaxFileSize bytes. The
// size is checked before and during the read, so a file growing under a
// concurrent writer is still refused. The handle is closed on return,
// leaving path free for the atomic rename of a later Save.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	tooLarge := errors.Wrapf(ErrFileTooLarge, "%s", path)
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, tooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	switch {
	case err != nil:
		return nil, errors.Wrapf(err, "reading %s", path)
	case len(data) > MaxFileSize:
		return nil, tooLarge
	}
	return data, nil
}
