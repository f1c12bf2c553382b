package action

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAction indicates a line without an action word.
var ErrMissingAction = errors.New("could not get action")

// UnknownActionError reports an action word with no registered parser.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("%q is not a defined action", e.Name)
}

// InvalidIndexError reports a remove argument that is not an unsigned integer.
type InvalidIndexError struct {
	Text string
	Err  error
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("failed to convert %q to an index", e.Text)
}

// Unwrap returns the conversion error.
func (e *InvalidIndexError) Unwrap() error {
	return e.Err
}

// Tokenize splits a line on single spaces. Runs of spaces yield empty
// tokens, which the parsers trim and keep.
func Tokenize(line string) []string {
	return strings.Split(line, " ")
}

// Build parses tokens into an Action using the default registry.
// It performs no I/O.
func Build(tokens []string) (Action, error) {
	return DefaultRegistry.Build(tokens)
}

// Build parses tokens into an Action. The first token selects the parser,
// case-insensitively and ignoring surrounding whitespace; the rest are its
// arguments.
func (r *Registry) Build(tokens []string) (Action, error) {
	if len(tokens) == 0 {
		return nil, ErrMissingAction
	}

	name := strings.TrimSpace(strings.ToLower(tokens[0]))
	p, ok := r.Find(name)
	if !ok {
		return nil, &UnknownActionError{Name: name}
	}
	return p.Parse(tokens[1:])
}
