// Package storage defines the backend-agnostic contract for persisting tasks.
package storage

import (
	"context"

	"todo/internal/model"
)

// Store loads and saves the whole task sequence at once.
// Task list code never touches the file system directly.
type Store interface {
	// Load reads the persisted tasks.
	// Returns an error matching ErrUnavailable if the backing file cannot be
	// opened, or ErrMalformed if its content is not a valid document.
	Load(ctx context.Context) ([]model.Task, error)

	// Save replaces the persisted tasks with tasks.
	// Returns an error matching ErrUnavailable if the backing file cannot be
	// opened for writing, or ErrWrite if encoding or flushing failed after
	// the file was truncated.
	Save(ctx context.Context, tasks []model.Task) error

	// String names the backend for logs.
	String() string
}
