// Package tasklist holds the ordered task collection and its persistence
// policy: every mutation is followed by a save of the whole list.
package tasklist

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"todo/internal/model"
	"todo/internal/storage"
)

// ErrIndexOutOfRange is matched by errors returned from Remove when the
// index does not address a task.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexOutOfRangeError reports a remove at a position past the end of the list.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("removal index (is %d) should be < len (is %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// TaskList is an ordered sequence of tasks bound to a store.
// It is not safe for concurrent use; the session owns the only instance.
type TaskList struct {
	tasks  []model.Task
	store  storage.Store
	logger *zap.Logger
}

// New returns an empty list bound to store. It does no I/O.
func New(store storage.Store, logger *zap.Logger) *TaskList {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskList{
		tasks:  []model.Task{},
		store:  store,
		logger: logger,
	}
}

// Load reads the list from store.
//
// An unavailable store is returned as an error. Malformed content is logged
// and an empty list is returned instead: the previous content is dropped on
// the next save.
func Load(ctx context.Context, store storage.Store, logger *zap.Logger) (*TaskList, error) {
	l := New(store, logger)

	tasks, err := store.Load(ctx)
	switch {
	case err == nil:
		l.tasks = append(l.tasks, tasks...)
	case errors.Is(err, storage.ErrMalformed):
		l.logger.Warn("failed to read tasks, starting with an empty list",
			zap.Stringer("store", store),
			zap.Error(err),
		)
	default:
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	l.logger.Debug("loaded tasks", zap.Stringer("store", store), zap.Int("count", len(l.tasks)))
	return l, nil
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (l *TaskList) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add appends task and saves the list.
func (l *TaskList) Add(ctx context.Context, task model.Task) error {
	l.tasks = append(l.tasks, task)
	return l.save(ctx)
}

// Remove deletes the task at index, shifting later tasks left, and saves
// the list. The save happens even when index is out of range, in which case
// an *IndexOutOfRangeError is returned alongside any save error.
func (l *TaskList) Remove(ctx context.Context, index int) error {
	var err error
	if index < 0 || index >= len(l.tasks) {
		err = &IndexOutOfRangeError{Index: index, Len: len(l.tasks)}
	} else {
		l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	}
	return multierr.Append(err, l.save(ctx))
}

// save persists the whole list. Only an unavailable store is reported;
// write failures after the file was opened are logged and swallowed.
func (l *TaskList) save(ctx context.Context) error {
	err := l.store.Save(ctx, l.tasks)
	switch {
	case err == nil:
		l.logger.Debug("saved tasks", zap.Stringer("store", l.store), zap.Int("count", len(l.tasks)))
		return nil
	case errors.Is(err, storage.ErrWrite):
		l.logger.Error("problem saving tasks", zap.Stringer("store", l.store), zap.Error(err))
		return nil
	default:
		return fmt.Errorf("save tasks: %w", err)
	}
}
