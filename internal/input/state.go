package input

import "fmt"

// ActionState is one action's position in the per-frame machine.
type ActionState uint8

const (
	// StateIdle is the state before an action's first update.
	StateIdle ActionState = iota

	// StatePressed is the first frame an action is active.
	StatePressed

	// StateHeld covers every active frame after the first.
	StateHeld

	// StateReleased covers every inactive frame after the first update.
	// It persists until the next activation; there is no decay back to
	// Idle.
	StateReleased
)

// String returns the lowercase state name.
func (s ActionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateHeld:
		return "held"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("ActionState(%d)", s)
	}
}

// IsActive reports whether the state means the action is asserted.
func (s ActionState) IsActive() bool {
	return s == StatePressed || s == StateHeld
}

// nextState advances the machine one frame.
//
//	Idle     + active -> Pressed
//	Released + active -> Pressed
//	Pressed  + active -> Held
//	Held     + active -> Held
//	any      + inactive -> Released
func nextState(s ActionState, active bool) ActionState {
	if !active {
		return StateReleased
	}
	switch s {
	case StatePressed, StateHeld:
		return StateHeld
	default:
		return StatePressed
	}
}
