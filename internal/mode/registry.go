package mode

import (
	"sync"
)

// Registry holds the fixed set of mode definitions. Lookups are exact-match;
// List preserves authoring order.
type Registry struct {
	mu    sync.RWMutex
	order []string
	modes map[string]*Mode
}

// NewRegistry creates a registry seeded with the built-in modes.
func NewRegistry() *Registry {
	r := &Registry{
		modes: make(map[string]*Mode),
	}

	for _, m := range BuiltInModes() {
		r.order = append(r.order, m.Slug)
		r.modes[m.Slug] = m
	}

	return r
}

// Get retrieves a mode by slug. An absent slug yields a *NotFoundError.
func (r *Registry) Get(slug string) (*Mode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modes[slug]
	if !ok {
		return nil, &NotFoundError{Slug: slug}
	}

	return m, nil
}

// Register adds a validated mode. A duplicate slug or a malformed definition
// is refused with an error.
func (r *Registry) Register(m *Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modes[m.Slug]; exists {
		return &ValidationError{Slug: m.Slug, Field: "slug", Reason: "already registered"}
	}

	r.order = append(r.order, m.Slug)
	r.modes[m.Slug] = m
	return nil
}

// Override replaces the mode with the same slug, keeping its position in the
// authoring order, or registers it at the end when the slug is new. Used by
// the loader when a higher-precedence source redefines a mode.
func (r *Registry) Override(m *Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modes[m.Slug]; !exists {
		r.order = append(r.order, m.Slug)
	}
	r.modes[m.Slug] = m
	return nil
}

// List returns all modes in authoring order.
func (r *Registry) List() []*Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]*Mode, 0, len(r.order))
	for _, slug := range r.order {
		modes = append(modes, r.modes[slug])
	}
	return modes
}

// ListBySource returns modes from the given source, in authoring order.
func (r *Registry) ListBySource(src Source) []*Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var modes []*Mode
	for _, slug := range r.order {
		if m := r.modes[slug]; m.Source == src {
			modes = append(modes, m)
		}
	}
	return modes
}

// ListWithCapability returns modes declaring the given capability, in
// authoring order.
func (r *Registry) ListWithCapability(c Capability) []*Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var modes []*Mode
	for _, slug := range r.order {
		if m := r.modes[slug]; m.Allows(c) {
			modes = append(modes, m)
		}
	}
	return modes
}

// Names returns all slugs in authoring order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Exists checks if a slug is registered.
func (r *Registry) Exists(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modes[slug]
	return ok
}

// Count returns the number of registered modes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modes)
}

// SetModes replaces the whole registry contents. The mode set is static per
// checkout, so reloads are wholesale, never piecemeal.
func (r *Registry) SetModes(modes []*Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = r.order[:0]
	r.modes = make(map[string]*Mode, len(modes))
	for _, m := range modes {
		if _, exists := r.modes[m.Slug]; exists {
			continue
		}
		r.order = append(r.order, m.Slug)
		r.modes[m.Slug] = m
	}
}
