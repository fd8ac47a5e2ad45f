// Package errors provides error types and handling for blob enumeration
// operations. It wraps underlying filesystem errors with operation context
// for better debugging, while preserving errors.Is/As chains so callers can
// still test for standard conditions such as fs.ErrNotExist.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for conditions detected by this module itself.
// Conditions originating in the filesystem (missing paths, permission
// denials) keep their underlying errors and remain testable with
// errors.Is against io/fs sentinels.
var (
	// ErrInvalidArgument indicates a construction-time configuration value
	// was rejected (unsupported root, malformed glob, bad suffix).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotDirectory indicates the configured root exists but is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Error represents a blob enumeration error with context about the
// operation that failed. It wraps the underlying error with additional
// context for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "new", "count", "enumerate",
	// "materialize").
	Op string

	// Path is the filesystem path involved (if applicable).
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("blobfs.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("blobfs.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given operation and underlying error.
func New(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewPathError creates a new Error with path context.
func NewPathError(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsInvalidArgument reports whether err indicates a rejected configuration
// value.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotExist reports whether err indicates a missing root directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsNotDirectory reports whether err indicates the root is not a directory.
func IsNotDirectory(err error) bool {
	return errors.Is(err, ErrNotDirectory)
}
