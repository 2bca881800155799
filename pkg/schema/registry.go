package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrTemplateNotFound reports a lookup outside the registered template set.
var ErrTemplateNotFound = errors.New("schema: template not found")

// Registry stores template schemas by identifier. Lookups are pure and
// side-effect-free; the registry is populated once at startup and treated as
// read-only by every consumer (codec, validator, dispatcher).
type Registry struct {
	mu      sync.RWMutex
	schemas map[TemplateID]Schema
}

// NewRegistry creates an empty registry instance. Most callers want Builtin
// instead, which ships the product's fixed template table.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[TemplateID]Schema),
	}
}

// Register adds a schema under its template identifier. Duplicate identifiers
// return an error.
func (r *Registry) Register(s Schema) error {
	if s.Template == "" {
		return fmt.Errorf("schema: template identifier is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Template]; exists {
		return fmt.Errorf("schema: template %q already registered", s.Template)
	}

	r.schemas[s.Template] = s
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(s Schema) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// SchemaFor retrieves the schema for a template identifier. Unknown
// identifiers yield ErrTemplateNotFound, never a panic; callers decide their
// own fallback.
func (r *Registry) SchemaFor(id TemplateID) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[id]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return s, nil
}

// Has reports whether a template identifier is registered.
func (r *Registry) Has(id TemplateID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.schemas[id]
	return ok
}

// List returns the registered template identifiers in sorted order.
func (r *Registry) List() []TemplateID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TemplateID, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
