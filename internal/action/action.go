// Package action parses input lines into actions and applies them to a
// task list.
package action

import (
	"context"
	"fmt"
	"io"

	"todo/internal/model"
	"todo/internal/output"
	"todo/internal/tasklist"
)

// Action is one parsed command. The set of variants is closed:
// Add, Remove, List and NoOp.
type Action interface {
	isAction()
}

// Add appends a task with Description.
type Add struct {
	Description string
}

// Remove deletes the task at Index (0-based, as listed).
type Remove struct {
	Index int
}

// List prints every task.
type List struct{}

// NoOp does nothing. It stands in for any line that failed to parse.
type NoOp struct{}

func (Add) isAction()    {}
func (Remove) isAction() {}
func (List) isAction()   {}
func (NoOp) isAction()   {}

// Execute applies a to list, writing any listing to out.
// Add and Remove persist the list; List and NoOp never do.
func Execute(ctx context.Context, a Action, list *tasklist.TaskList, out io.Writer) error {
	switch a := a.(type) {
	case Add:
		return list.Add(ctx, model.Task{Description: a.Description})
	case Remove:
		return list.Remove(ctx, a.Index)
	case List:
		for i, task := range list.Tasks() {
			output.FormatTask(out, i, task)
		}
		return nil
	case NoOp:
		return nil
	default:
		panic(fmt.Sprintf("action: unhandled action %T", a))
	}
}
