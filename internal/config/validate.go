package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/nem/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidStoreFile indicates store_file is not a bare file name.
	ErrInvalidStoreFile = errors.New("store_file must be a file name without directories")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if err := validateStoreFile(cfg.StoreFile); err != nil {
		errs = append(errs, &FieldError{Field: KeyStoreFile, Value: cfg.StoreFile, Err: err})
	}

	if cfg.GlobalStore != "" {
		if err := validatePath(cfg.GlobalStore); err != nil {
			errs = append(errs, &FieldError{Field: KeyGlobalStore, Value: cfg.GlobalStore, Err: err})
		}
	}

	return errs
}

func validateStoreFile(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidStoreFile
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return ErrInvalidStoreFile
	}
	if strings.ContainsRune(name, '\x00') {
		return ErrInvalidStoreFile
	}
	return nil
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents an error for a specific setting.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
