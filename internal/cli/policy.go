// Package cli runs the interactive command loop and decides which errors
// end the process.
package cli

import (
	"context"
	"errors"

	"todo/internal/exitcode"
	"todo/internal/storage"
	"todo/internal/tasklist"
)

// fatalPolicy maps fatal conditions to exit codes, first match wins.
//
// Conditions that never reach this table because they are recovered where
// they occur:
//   - malformed storage content at load: logged, list starts empty
//   - encode or flush failure at save: logged, file left indeterminate
//   - unparsable command line: "invalid arg" diagnostic, no-op
var fatalPolicy = []struct {
	target error
	code   int
}{
	{storage.ErrUnavailable, exitcode.StorageError},
	{tasklist.ErrIndexOutOfRange, exitcode.IndexError},
	{errReadInput, exitcode.InputError},
	{context.Canceled, exitcode.Interrupted},
	{context.DeadlineExceeded, exitcode.Interrupted},
}

// classify returns the exit code for a fatal error.
func classify(err error) int {
	for _, rule := range fatalPolicy {
		if errors.Is(err, rule.target) {
			return rule.code
		}
	}
	return exitcode.Failure
}
