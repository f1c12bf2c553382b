// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates input ended normally.
	Success = 0

	// UsageError indicates bad flags or configuration.
	UsageError = 1

	// StorageError indicates the storage file could not be opened.
	StorageError = 2

	// IndexError indicates a remove at an index past the end of the list.
	IndexError = 3

	// InputError indicates standard input could not be read.
	InputError = 4

	// Failure indicates any other fatal error.
	Failure = 5

	// Interrupted indicates the process received SIGINT or SIGTERM.
	Interrupted = 130
)
