package simulation

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available simulations by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() Simulation
}

// NewRegistry creates an empty simulation registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() Simulation),
	}
}

// Register adds a simulation factory to the registry.
func (r *Registry) Register(name string, factory func() Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("simulation %s already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// MustRegister registers a simulation and panics on a duplicate name. It is
// meant for package init functions, where a duplicate is a programming error.
func (r *Registry) MustRegister(name string, factory func() Simulation) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Get returns a new instance of the requested simulation.
func (r *Registry) Get(name string) (Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("simulation %s not found", name)
	}

	return factory(), nil
}

// List returns all registered simulation names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global simulation registry.
var DefaultRegistry = NewRegistry()
