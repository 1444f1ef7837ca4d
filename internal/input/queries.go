package input

import "github.com/dshills/inputstorm/internal/input/action"

// IsActionPressed reports whether the action entered the pressed state
// on the last update. Disabled or unknown actions report false.
func (m *Manager) IsActionPressed(id string) bool {
	return m.IsActionEnabled(id) && m.states[id] == StatePressed
}

// IsActionHeld reports whether the action has stayed active past its
// pressed frame. Disabled or unknown actions report false.
func (m *Manager) IsActionHeld(id string) bool {
	return m.IsActionEnabled(id) && m.states[id] == StateHeld
}

// IsActionReleased reports whether the action is in the released state.
// Disabled or unknown actions report false.
func (m *Manager) IsActionReleased(id string) bool {
	return m.IsActionEnabled(id) && m.states[id] == StateReleased
}

// ActionValue returns the action's masked intensity from the last
// update. Disabled or unknown actions report 0.0.
func (m *Manager) ActionValue(id string) float64 {
	if !m.IsActionEnabled(id) {
		return 0.0
	}
	return m.intensity[id]
}

// ActionState returns the action's state from the last update, masked by
// enablement. Disabled or unknown actions report StateIdle.
func (m *Manager) ActionState(id string) ActionState {
	if !m.IsActionEnabled(id) {
		return StateIdle
	}
	return m.states[id]
}

// Action returns a registered action by id.
func (m *Manager) Action(id string) (action.Action, bool) {
	return m.registry.Get(id)
}

// Actions returns every registered action in registration order.
func (m *Manager) Actions() []action.Action {
	return m.registry.All()
}

// ActionsByCategory returns registered actions in the given category,
// registration order preserved.
func (m *Manager) ActionsByCategory(category string) []action.Action {
	return m.registry.ByCategory(category)
}
