package testutil

import (
	"errors"

	"todo/internal/storage"
)

func storageUnavailable(err error) bool {
	return errors.Is(err, storage.ErrUnavailable)
}

// Unavailable returns a storage error matching storage.ErrUnavailable.
func Unavailable() error {
	return storage.NewError(storage.ErrUnavailable, "open", "tasks.json", errors.New("permission denied"))
}

// Malformed returns a storage error matching storage.ErrMalformed.
func Malformed() error {
	return storage.NewError(storage.ErrMalformed, "decode", "tasks.json", errors.New("unexpected end of JSON input"))
}

// WriteFailure returns a storage error matching storage.ErrWrite.
func WriteFailure() error {
	return storage.NewError(storage.ErrWrite, "flush", "tasks.json", errors.New("disk full"))
}
