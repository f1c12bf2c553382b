package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the storage file could not be opened.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrMalformed indicates the storage file content is not a valid document.
	ErrMalformed = errors.New("malformed storage content")

	// ErrWrite indicates the document could not be fully written.
	ErrWrite = errors.New("storage write failed")
)

// Error describes a failed storage operation on a path.
// It matches its Kind with errors.Is and unwraps to the underlying cause.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

// NewError builds an Error of the given kind.
func NewError(kind error, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}
