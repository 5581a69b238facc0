package provider

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface a provider package implements to be registered
// with an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds the providers available to a single application instance,
// keyed by the name given on the command line.
type Registry struct {
	providers map[string]Provider
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under the given name. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) Register(name string, p Provider) {
	if _, exists := r.providers[name]; exists {
		panic(fmt.Sprintf("provider with name '%s' already registered", name))
	}
	slog.Debug("Registering provider.", "name", name)
	r.providers[name] = p
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (registered: %v)", name, r.Names())
	}
	return p, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
