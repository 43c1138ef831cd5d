package alias

import (
	"fmt"

	"github.com/thoreinstein/nem/internal/errors"
)

// Sentinel errors for store and chain operations.
var (
	// ErrDecode marks a store file that is not valid TOML or misses required fields.
	ErrDecode = errors.New("invalid store file")

	// ErrWrite marks a store file that could not be written.
	ErrWrite = errors.New("store write failed")

	// ErrNoStore indicates no store file exists anywhere in the ancestry.
	ErrNoStore = errors.New("no store file found")

	// ErrNotFound indicates no store in the chain owns the code.
	ErrNotFound = errors.New("code not found")

	// ErrCodeCollision indicates a code already resolves somewhere in the chain.
	ErrCodeCollision = errors.New("code already in use")

	// ErrInvalidCode indicates a code that is empty or contains whitespace.
	ErrInvalidCode = errors.New("invalid code")

	// ErrStoreExists indicates an init target already has a store file.
	ErrStoreExists = errors.New("store file already exists")
)

// DecodeError reports a store file that could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// WriteError reports a store file that could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// CollisionError reports a code that is already taken.
type CollisionError struct {
	Code string
	// Command is the command text currently bound to Code.
	Command string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("collision: code %q already exists for `%s`", e.Code, e.Command)
}

// Is lets errors.Is match ErrCodeCollision.
func (e *CollisionError) Is(target error) bool { return target == ErrCodeCollision }
