// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/model"
	"todo/internal/storage"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []model.Task
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

var _ storage.Store = (*FakeStore)(nil)

// NewFakeStore creates a FakeStore holding the given task descriptions.
func NewFakeStore(descriptions ...string) *FakeStore {
	f := &FakeStore{tasks: []model.Task{}}
	for _, d := range descriptions {
		f.tasks = append(f.tasks, model.Task{Description: d})
	}
	return f
}

// Load implements storage.Store.
func (f *FakeStore) Load(ctx context.Context) ([]model.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.copyTasks(), nil
}

// Save implements storage.Store.
// The persisted tasks are replaced even when SaveErr is set, as a real file
// would be truncated, unless SaveErr matches storage.ErrUnavailable.
func (f *FakeStore) Save(ctx context.Context, tasks []model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.SaveErr != nil && storageUnavailable(f.SaveErr) {
		return f.SaveErr
	}
	f.tasks = make([]model.Task, len(tasks))
	copy(f.tasks, tasks)
	return f.SaveErr
}

func (f *FakeStore) String() string {
	return "fake"
}

// Saved returns the persisted task descriptions in order.
func (f *FakeStore) Saved() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.tasks))
	for i, t := range f.tasks {
		out[i] = t.Description
	}
	return out
}

// Saves returns how many times Save was called.
func (f *FakeStore) Saves() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.saves
}

func (f *FakeStore) copyTasks() []model.Task {
	out := make([]model.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}
