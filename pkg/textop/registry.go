package textop

import "sort"

// Registry maps operation names to constructors.
type Registry struct {
	ops map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Constructor)}
}

// Default returns a registry carrying the built-in operations.
func Default() *Registry {
	r := NewRegistry()
	r.Register(OpUppercase, Uppercase)
	r.Register(OpPrefix, Prefix)
	return r
}

// Register binds name to c, replacing any previous binding.
func (r *Registry) Register(name string, c Constructor) {
	r.ops[name] = c
}

// Resolve builds the Transform for spec. It fails with
// UnknownOperationError for unregistered names and propagates constructor
// errors (e.g. MissingParameterError) unchanged.
func (r *Registry) Resolve(spec Spec) (Transform, error) {
	c, ok := r.ops[spec.Name]
	if !ok {
		return nil, &UnknownOperationError{Name: spec.Name}
	}
	return c(spec.Params)
}

// Names lists the registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
