package input

import "github.com/dshills/inputstorm/internal/input/action"

// resolveActive reports whether any binding of the action is active
// against the raw store. Actions with no bindings are never active.
func (m *Manager) resolveActive(a action.Action) bool {
	for _, b := range a.Bindings {
		if b.Active(m) {
			return true
		}
	}
	return false
}

// resolveValue computes an action's value from its bindings and its
// current state. Digital actions report 1.0 while pressed or held.
// Analog actions report the first binding resolving to a non-zero axis
// value. Hybrid actions report 1.0 while pressed or held and fall back
// to the analog rule otherwise.
func (m *Manager) resolveValue(a action.Action, s ActionState) float64 {
	switch a.Kind {
	case action.KindDigital:
		if s.IsActive() {
			return 1.0
		}
		return 0.0
	case action.KindAnalog:
		return m.analogValue(a)
	case action.KindHybrid:
		if s.IsActive() {
			return 1.0
		}
		return m.analogValue(a)
	default:
		return 0.0
	}
}

// analogValue returns the first non-zero resolved value among the
// action's analog bindings. Digital bindings are skipped.
func (m *Manager) analogValue(a action.Action) float64 {
	for _, b := range a.Bindings {
		ab, ok := b.(action.Analog)
		if !ok {
			continue
		}
		if v := ab.Value(m); v != 0.0 {
			return v
		}
	}
	return 0.0
}
