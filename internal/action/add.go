package action

import "strings"

func init() {
	Register(addParser{})
}

type addParser struct{}

func (addParser) Name() string     { return "add" }
func (addParser) Synopsis() string { return "Append a task" }
func (addParser) Usage() string    { return "add <text...>" }

// Parse trims each token and joins them with single spaces. No tokens gives
// an empty description.
func (addParser) Parse(args []string) (Action, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = strings.TrimSpace(arg)
	}
	return Add{Description: strings.Join(parts, " ")}, nil
}
