package action

import (
	"sync"
)

// Registry is the authoritative set of registered actions. Registration is
// idempotent by id: registering an existing id silently replaces the prior
// definition in place, keeping its original position.
//
// The registry is safe for concurrent use. The lock exists for table hot
// reload, which re-registers actions from a watcher goroutine while the
// frame loop reads.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// Register adds or replaces an action. Actions with an empty ID are
// ignored; a typo'd or missing id is never a hot-path failure.
func (r *Registry) Register(a Action) {
	if a.ID == "" {
		return
	}
	if a.DisplayName == "" {
		a.DisplayName = a.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	r.actions[a.ID] = a
}

// RegisterAll registers every action in order.
func (r *Registry) RegisterAll(actions ...Action) {
	for _, a := range actions {
		r.Register(a)
	}
}

// Get returns the action for an id.
func (r *Registry) Get(id string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[id]
	return a, ok
}

// Has reports whether an id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.actions[id]
	return ok
}

// All returns every registered action in registration order.
func (r *Registry) All() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Action, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.actions[id])
	}
	return out
}

// ByCategory returns actions in the given category, in registration order.
func (r *Registry) ByCategory(category string) []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Action
	for _, id := range r.order {
		if a := r.actions[id]; a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ByTag returns actions carrying the given tag, in registration order.
func (r *Registry) ByTag(tag string) []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Action
	for _, id := range r.order {
		if a := r.actions[id]; a.HasTag(tag) {
			out = append(out, a)
		}
	}
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.actions)
}

// Remove deletes an action by id and reports whether it existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actions[id]; !ok {
		return false
	}
	delete(r.actions, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all actions.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = make(map[string]Action)
	r.order = nil
}
