package action

import (
	"math"
	"strings"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// Source provides read access to the raw physical input state a manager
// accumulated for the current frame. Absent inputs read as false / 0.0.
type Source interface {
	// InputState reports whether a digital input is currently asserted.
	InputState(in physical.Input) bool

	// InputValue returns the current analog value of an input.
	InputValue(in physical.Input) float64
}

// Binding describes how physical input state asserts an action. The set of
// binding shapes is closed: Single, Modified, Combo, and Analog.
type Binding interface {
	// Active reports whether the binding is asserted given raw state.
	Active(src Source) bool

	// String returns a display form like "key:leftshift+key:w".
	String() string

	isBinding()
}

// Single is active while one input is asserted.
type Single struct {
	Input physical.Input
}

// SingleOf builds a Single binding.
func SingleOf(in physical.Input) Single {
	return Single{Input: in}
}

// Active reports whether the bound input is asserted.
func (b Single) Active(src Source) bool {
	return src.InputState(b.Input)
}

// String returns the input's text form.
func (b Single) String() string {
	return b.Input.String()
}

func (Single) isBinding() {}

// Modified is active while both a modifier input and a key input are
// asserted, e.g. shift+w.
type Modified struct {
	Modifier physical.Input
	Key      physical.Input
}

// ModifiedOf builds a Modified binding.
func ModifiedOf(modifier, key physical.Input) Modified {
	return Modified{Modifier: modifier, Key: key}
}

// Active reports whether both inputs are asserted.
func (b Modified) Active(src Source) bool {
	return src.InputState(b.Modifier) && src.InputState(b.Key)
}

// String returns "modifier+key" in text form.
func (b Modified) String() string {
	return b.Modifier.String() + "+" + b.Key.String()
}

func (Modified) isBinding() {}

// Combo is active while every listed input is asserted at once.
type Combo struct {
	Inputs []physical.Input
}

// ComboOf builds a Combo binding.
func ComboOf(inputs ...physical.Input) Combo {
	return Combo{Inputs: inputs}
}

// Active reports whether all inputs are asserted. An empty combo is never
// active.
func (b Combo) Active(src Source) bool {
	if len(b.Inputs) == 0 {
		return false
	}
	for _, in := range b.Inputs {
		if !src.InputState(in) {
			return false
		}
	}
	return true
}

// String joins the input text forms with "+".
func (b Combo) String() string {
	parts := make([]string, len(b.Inputs))
	for i, in := range b.Inputs {
		parts[i] = in.String()
	}
	return strings.Join(parts, "+")
}

func (Combo) isBinding() {}

// Analog maps a graded axis onto an action using a three-zone law:
// magnitudes under Deadzone resolve to 0, magnitudes over Threshold
// saturate to the sign of the value, and the region between passes the raw
// value through unchanged. Activity for state-machine purposes means the
// magnitude exceeds Threshold.
//
// Threshold and Deadzone are expected in [0, 1]; callers own that.
type Analog struct {
	Input     physical.Input
	Threshold float64
	Deadzone  float64
}

// AnalogOf builds an Analog binding.
func AnalogOf(in physical.Input, threshold, deadzone float64) Analog {
	return Analog{Input: in, Threshold: threshold, Deadzone: deadzone}
}

// Active reports whether the magnitude exceeds the threshold.
func (b Analog) Active(src Source) bool {
	return math.Abs(src.InputValue(b.Input)) > b.Threshold
}

// Value resolves the current axis value through the three-zone law.
func (b Analog) Value(src Source) float64 {
	v := src.InputValue(b.Input)
	mag := math.Abs(v)
	switch {
	case mag < b.Deadzone:
		return 0.0
	case mag > b.Threshold:
		if v < 0 {
			return -1.0
		}
		return 1.0
	default:
		return v
	}
}

// String returns the axis text form.
func (b Analog) String() string {
	return b.Input.String()
}

func (Analog) isBinding() {}
