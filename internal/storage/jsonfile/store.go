// Package jsonfile implements storage.Store on a single JSON document file.
package jsonfile

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"todo/internal/model"
	"todo/internal/storage"
)

// DefaultFile is the storage file name used when none is configured.
const DefaultFile = "tasks.json"

// Field names match exactly and text is written unescaped.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

var (
	errMissingTasks       = errors.New(`missing "tasks" field`)
	errMissingDescription = errors.New(`task without "description" field`)
)

// wireDocument mirrors model.Document with pointers so that absent and null
// fields can be told apart from empty ones.
type wireDocument struct {
	Tasks *[]wireTask `json:"tasks"`
}

type wireTask struct {
	Description *string `json:"description"`
}

// Store reads and writes the task document at a fixed path.
// The file must already exist; Store never creates it.
type Store struct {
	fs   afero.Fs
	path string
}

var _ storage.Store = (*Store)(nil)

// New creates a store for path on fs.
// If fs is nil the OS file system is used.
func New(fs afero.Fs, path string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if path == "" {
		path = DefaultFile
	}
	return &Store{fs: fs, path: path}
}

// Path returns the storage file path.
func (s *Store) Path() string {
	return s.path
}

// Load opens the storage file and decodes the task document.
func (s *Store) Load(ctx context.Context) ([]model.Task, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, storage.NewError(storage.ErrUnavailable, "open", s.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return nil, storage.NewError(storage.ErrMalformed, "read", s.path, err)
	}
	return decode(s.path, data)
}

// Save truncates the storage file and writes tasks as one compact document.
// A failure after truncation leaves the file empty or partially written.
func (s *Store) Save(ctx context.Context, tasks []model.Task) error {
	f, err := s.fs.OpenFile(s.path, os.O_RDWR|os.O_TRUNC, 0)
	if err != nil {
		return storage.NewError(storage.ErrUnavailable, "open", s.path, err)
	}

	w := bufio.NewWriter(f)
	var writeErr error

	data, err := encode(tasks)
	if err != nil {
		writeErr = storage.NewError(storage.ErrWrite, "encode", s.path, err)
	} else if _, err := w.Write(data); err != nil {
		writeErr = storage.NewError(storage.ErrWrite, "write", s.path, err)
	}

	// Flush even after an encode failure, whatever made it into the buffer
	// still reaches the file.
	if err := w.Flush(); err != nil && writeErr == nil {
		writeErr = storage.NewError(storage.ErrWrite, "flush", s.path, err)
	}
	if err := f.Close(); err != nil && writeErr == nil {
		writeErr = storage.NewError(storage.ErrWrite, "close", s.path, err)
	}
	return writeErr
}

func (s *Store) String() string {
	return "jsonfile@" + s.path
}

func decode(path string, data []byte) ([]model.Task, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, storage.NewError(storage.ErrMalformed, "decode", path, err)
	}
	if doc.Tasks == nil {
		return nil, storage.NewError(storage.ErrMalformed, "decode", path, errMissingTasks)
	}

	tasks := make([]model.Task, 0, len(*doc.Tasks))
	for _, t := range *doc.Tasks {
		if t.Description == nil {
			return nil, storage.NewError(storage.ErrMalformed, "decode", path, errMissingDescription)
		}
		tasks = append(tasks, model.Task{Description: *t.Description})
	}
	return tasks, nil
}

func encode(tasks []model.Task) ([]byte, error) {
	// An empty list is written as [] rather than null.
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.Marshal(model.Document{Tasks: tasks})
}
