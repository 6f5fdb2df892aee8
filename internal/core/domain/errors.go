package domain

import (
	"errors"
	"fmt"
)

// Domain errors classify every failure smartfile reports.
var (
	// ErrInvalidArgument indicates bad input shape or a path of the wrong kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates an expected file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode indicates content does not match its expected format.
	ErrDecode = errors.New("decode error")

	// ErrOSFailure indicates the OS refused a move, rename or mkdir.
	ErrOSFailure = errors.New("os failure")

	// ErrConflict indicates a destination already exists or is claimed twice.
	ErrConflict = errors.New("destination conflict")
)

// PathError records a failed operation on a path.
// Kind is one of the domain sentinels; Err is the underlying cause, if any.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// NewPathError creates a PathError.
func NewPathError(op, path string, kind, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a destination conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
