package action

import (
	"strconv"
	"strings"
)

func init() {
	Register(removeParser{})
}

type removeParser struct{}

func (removeParser) Name() string     { return "remove" }
func (removeParser) Synopsis() string { return "Delete the task at a listed index" }
func (removeParser) Usage() string    { return "remove <index>" }

// Parse reads the first argument as the index. A missing argument is parsed
// as the empty string and fails the same way as any non-number.
func (removeParser) Parse(args []string) (Action, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	index, err := ParseIndex(arg)
	if err != nil {
		return nil, err
	}
	return Remove{Index: index}, nil
}

// ParseIndex parses a 0-based task index.
// Surrounding whitespace is ignored; signs are rejected.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &InvalidIndexError{Text: s, Err: err}
	}
	return int(n), nil
}
