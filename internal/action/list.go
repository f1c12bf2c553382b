package action

func init() {
	Register(listParser{})
}

type listParser struct{}

func (listParser) Name() string     { return "list" }
func (listParser) Synopsis() string { return "Print tasks as <index> | <description>" }
func (listParser) Usage() string    { return "list" }

// Parse ignores any arguments.
func (listParser) Parse([]string) (Action, error) {
	return List{}, nil
}
