package device

import "github.com/dshills/inputstorm/internal/input/physical"

// Sink receives published per-frame input state. The input manager's raw
// state store is the usual implementation.
type Sink interface {
	// SetInputState asserts or clears a digital input.
	SetInputState(in physical.Input, pressed bool)

	// SetInputValue sets an analog input's current value.
	SetInputValue(in physical.Input, value float64)
}
