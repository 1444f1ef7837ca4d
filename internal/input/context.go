package input

import (
	"sort"

	"github.com/dshills/inputstorm/internal/input/action"
	"github.com/dshills/inputstorm/internal/input/history"
)

// Context gates which actions are observable while it is on the stack.
// A context never touches action state machines; it only masks queries
// and event recording.
//
// The zero Context is valid and gates nothing.
type Context struct {
	// Name identifies the context ("menu", "vehicle", "cutscene").
	Name string

	// Priority orders the stack; higher-priority contexts sort toward
	// the top and pop first.
	Priority int

	// Enabled, when non-empty, is an allow-list: only listed action ids
	// stay enabled while this context is stacked.
	Enabled map[string]bool

	// Disabled lists action ids that are disabled while this context is
	// stacked, regardless of what other contexts allow.
	Disabled map[string]bool
}

// NewContext creates a context with the given name and priority.
func NewContext(name string, priority int) Context {
	return Context{Name: name, Priority: priority}
}

// WithEnabled adds action ids to the context's allow-list. The receiver
// is left untouched.
func (c Context) WithEnabled(ids ...string) Context {
	merged := make(map[string]bool, len(c.Enabled)+len(ids))
	for id := range c.Enabled {
		merged[id] = true
	}
	for _, id := range ids {
		merged[id] = true
	}
	c.Enabled = merged
	return c
}

// WithDisabled adds action ids to the context's deny-list. The receiver
// is left untouched.
func (c Context) WithDisabled(ids ...string) Context {
	merged := make(map[string]bool, len(c.Disabled)+len(ids))
	for id := range c.Disabled {
		merged[id] = true
	}
	for _, id := range ids {
		merged[id] = true
	}
	c.Disabled = merged
	return c
}

// HasAllowList reports whether the context restricts to an allow-list.
func (c Context) HasAllowList() bool {
	return len(c.Enabled) > 0
}

// Enables reports whether the id is on the allow-list.
func (c Context) Enables(id string) bool {
	return c.Enabled[id]
}

// Disables reports whether the id is on the deny-list.
func (c Context) Disables(id string) bool {
	return c.Disabled[id]
}

// PushContext adds a context to the stack. The stack stays sorted
// ascending by priority; pushes with equal priority keep push order.
func (m *Manager) PushContext(c Context) {
	oldTop := m.topContextName()
	m.contexts = append(m.contexts, c)
	sort.SliceStable(m.contexts, func(i, j int) bool {
		return m.contexts[i].Priority < m.contexts[j].Priority
	})
	m.record(history.NewContextChanged(oldTop, m.topContextName()))
	m.metrics.RecordContextPush()
}

// PopContext removes and returns the top of the stack: the
// highest-priority context, most recently pushed among ties. Returns nil
// when the stack is empty.
func (m *Manager) PopContext() *Context {
	if len(m.contexts) == 0 {
		return nil
	}
	oldTop := m.topContextName()
	popped := m.contexts[len(m.contexts)-1]
	m.contexts = m.contexts[:len(m.contexts)-1]
	m.record(history.NewContextChanged(oldTop, m.topContextName()))
	m.metrics.RecordContextPop()
	return &popped
}

// ClearContexts empties the stack.
func (m *Manager) ClearContexts() {
	if len(m.contexts) == 0 {
		return
	}
	oldTop := m.topContextName()
	removed := len(m.contexts)
	m.contexts = nil
	m.record(history.NewContextChanged(oldTop, ""))
	for i := 0; i < removed; i++ {
		m.metrics.RecordContextPop()
	}
}

// ContextDepth returns the number of stacked contexts.
func (m *Manager) ContextDepth() int {
	return len(m.contexts)
}

// HasContext reports whether a context with the given name is stacked.
func (m *Manager) HasContext(name string) bool {
	for i := range m.contexts {
		if m.contexts[i].Name == name {
			return true
		}
	}
	return false
}

// Contexts returns the stack bottom-up (ascending priority).
func (m *Manager) Contexts() []Context {
	out := make([]Context, len(m.contexts))
	copy(out, m.contexts)
	return out
}

// topContextName returns the name of the stack top, "" when empty.
func (m *Manager) topContextName() string {
	if len(m.contexts) == 0 {
		return ""
	}
	return m.contexts[len(m.contexts)-1].Name
}

// IsActionEnabled reports whether an action is currently observable.
// Unknown ids are disabled.
func (m *Manager) IsActionEnabled(id string) bool {
	a, ok := m.registry.Get(id)
	if !ok {
		return false
	}
	return m.isEnabled(a)
}

// isEnabled applies the context rules to a known action: a required
// context must be stacked, no stacked context may deny the id, and every
// stacked allow-list must include it.
func (m *Manager) isEnabled(a action.Action) bool {
	if required := a.Meta.ContextRequired; required != "" && !m.HasContext(required) {
		return false
	}
	for i := range m.contexts {
		if m.contexts[i].Disables(a.ID) {
			return false
		}
	}
	for i := range m.contexts {
		c := &m.contexts[i]
		if c.HasAllowList() && !c.Enables(a.ID) {
			return false
		}
	}
	return true
}
