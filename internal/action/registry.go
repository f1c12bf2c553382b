package action

import (
	"fmt"
	"sort"
	"sync"
)

// Parser turns the arguments following an action word into an Action.
type Parser interface {
	// Name returns the action word.
	Name() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Parse builds the action from the remaining tokens.
	Parse(args []string) (Action, error)
}

// Registry holds registered parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Register adds a parser to the registry.
// Returns an error if the name is already registered.
func (r *Registry) Register(p Parser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.parsers[name]; exists {
		return fmt.Errorf("action already registered: %s", name)
	}
	r.parsers[name] = p
	return nil
}

// Find looks up a parser by action word.
func (r *Registry) Find(name string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[name]
	return p, ok
}

// All returns all parsers sorted by name.
func (r *Registry) All() []Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Parser, len(names))
	for i, name := range names {
		result[i] = r.parsers[name]
	}
	return result
}

// DefaultRegistry is the global parser registry.
var DefaultRegistry = NewRegistry()

// Register adds a parser to the default registry.
func Register(p Parser) {
	if err := DefaultRegistry.Register(p); err != nil {
		panic(err)
	}
}
