// Package houses exposes the fixed set of house names items are scoped by.
package houses

// Registry enumerates the known houses in a stable order. The set is fixed
// at startup and never mutated.
type Registry struct {
	names []string
}

// NewRegistry builds a Registry from the configured names.
func NewRegistry(names []string) *Registry {
	copied := make([]string, len(names))
	copy(copied, names)
	return &Registry{names: copied}
}

// List returns the house names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name matches a registered house exactly.
func (r *Registry) Contains(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}
