// Package fileutil provides file system helpers for store files: bounded
// reads and atomic temp-file-plus-rename writes.
package fileutil

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/nem/internal/errors"
)

// DefaultFilePerm is used for store files that do not exist yet.
const DefaultFilePerm os.FileMode = 0o644

// AtomicWriteFile writes data to path through a temp file in the same
// directory followed by a rename, so an interrupted write leaves the
// previous contents intact. When path already exists its permission bits
// are kept; otherwise perm is applied.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".nem-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// MarshalTOML encodes v with the layout used for store files: no
// indentation of array tables and a trailing newline.
func MarshalTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling TOML")
	}
	data := buf.Bytes()
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// AtomicWriteTOML encodes v as TOML and writes it to path atomically.
func AtomicWriteTOML(path string, v any) error {
	data, err := MarshalTOML(v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, DefaultFilePerm)
}
