package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/titianlabs/pagekit/pkg/schema"
)

// Registry stores rendering strategies by template identifier, providing
// discovery and duplication safeguards. The set of keys is expected to stay
// inside the closed template enumeration; registering a strategy for an
// identifier the schema registry does not know is allowed but will only ever
// be reached through explicit dispatch.
type Registry struct {
	mu        sync.RWMutex
	renderers map[schema.TemplateID]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[schema.TemplateID]Renderer),
	}
}

// Register adds a renderer for a template identifier. Duplicate registrations
// return an error.
func (r *Registry) Register(template schema.TemplateID, renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	if template == "" {
		return fmt.Errorf("render: template identifier is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[template]; exists {
		return fmt.Errorf("render: template %q already has a renderer", template)
	}

	r.renderers[template] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(template schema.TemplateID, renderer Renderer) {
	if err := r.Register(template, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer registered for a template identifier.
func (r *Registry) Get(template schema.TemplateID) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[template]
	return renderer, ok
}

// Has reports whether a template identifier has a registered renderer.
func (r *Registry) Has(template schema.TemplateID) bool {
	_, ok := r.Get(template)
	return ok
}

// List returns the template identifiers with registered renderers, sorted.
func (r *Registry) List() []schema.TemplateID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]schema.TemplateID, 0, len(r.renderers))
	for id := range r.renderers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
