package action

import (
	"testing"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// fakeSource is a canned raw-state source for binding tests.
type fakeSource struct {
	pressed map[physical.Input]bool
	values  map[physical.Input]float64
}

func (s fakeSource) InputState(in physical.Input) bool {
	return s.pressed[in]
}

func (s fakeSource) InputValue(in physical.Input) float64 {
	return s.values[in]
}

func TestSingleActive(t *testing.T) {
	w := physical.KeyW.Input()
	b := SingleOf(w)

	src := fakeSource{pressed: map[physical.Input]bool{w: true}}
	if !b.Active(src) {
		t.Error("Active() = false with input pressed, want true")
	}

	if b.Active(fakeSource{}) {
		t.Error("Active() = true with no state, want false")
	}
}

func TestModifiedActive(t *testing.T) {
	shift := physical.KeyLeftShift.Input()
	w := physical.KeyW.Input()
	b := ModifiedOf(shift, w)

	tests := []struct {
		name    string
		pressed []physical.Input
		want    bool
	}{
		{name: "both held", pressed: []physical.Input{shift, w}, want: true},
		{name: "modifier only", pressed: []physical.Input{shift}, want: false},
		{name: "key only", pressed: []physical.Input{w}, want: false},
		{name: "neither", pressed: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fakeSource{pressed: make(map[physical.Input]bool)}
			for _, in := range tt.pressed {
				src.pressed[in] = true
			}
			if got := b.Active(src); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComboActive(t *testing.T) {
	ctrl := physical.KeyLeftCtrl.Input()
	shift := physical.KeyLeftShift.Input()
	d := physical.KeyD.Input()
	b := ComboOf(ctrl, shift, d)

	tests := []struct {
		name    string
		pressed []physical.Input
		want    bool
	}{
		{name: "all held", pressed: []physical.Input{ctrl, shift, d}, want: true},
		{name: "one missing", pressed: []physical.Input{ctrl, shift}, want: false},
		{name: "none", pressed: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fakeSource{pressed: make(map[physical.Input]bool)}
			for _, in := range tt.pressed {
				src.pressed[in] = true
			}
			if got := b.Active(src); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyComboNeverActive(t *testing.T) {
	b := ComboOf()
	src := fakeSource{pressed: map[physical.Input]bool{physical.KeyW.Input(): true}}
	if b.Active(src) {
		t.Error("empty combo Active() = true, want false")
	}
}

func TestAnalogValueZones(t *testing.T) {
	axis := physical.PadLeftX.Input()
	b := AnalogOf(axis, 0.5, 0.1)

	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "rest", raw: 0.0, want: 0.0},
		{name: "inside deadzone", raw: 0.05, want: 0.0},
		{name: "negative inside deadzone", raw: -0.05, want: 0.0},
		{name: "deadzone boundary passes", raw: 0.1, want: 0.1},
		{name: "passthrough", raw: 0.3, want: 0.3},
		{name: "negative passthrough", raw: -0.3, want: -0.3},
		{name: "threshold boundary passes", raw: 0.5, want: 0.5},
		{name: "saturates positive", raw: 0.7, want: 1.0},
		{name: "saturates negative", raw: -0.7, want: -1.0},
		{name: "full deflection", raw: 1.0, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fakeSource{values: map[physical.Input]float64{axis: tt.raw}}
			if got := b.Value(src); got != tt.want {
				t.Errorf("Value(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAnalogActive(t *testing.T) {
	axis := physical.PadTriggerRight.Input()
	b := AnalogOf(axis, 0.5, 0.1)

	tests := []struct {
		name string
		raw  float64
		want bool
	}{
		{name: "rest", raw: 0.0, want: false},
		{name: "passthrough zone inactive", raw: 0.3, want: false},
		{name: "exactly threshold inactive", raw: 0.5, want: false},
		{name: "over threshold", raw: 0.51, want: true},
		{name: "negative over threshold", raw: -0.8, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fakeSource{values: map[physical.Input]float64{axis: tt.raw}}
			if got := b.Active(src); got != tt.want {
				t.Errorf("Active() with raw %v = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBindingString(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		want    string
	}{
		{
			name:    "single",
			binding: SingleOf(physical.KeyW.Input()),
			want:    "key:w",
		},
		{
			name:    "modified",
			binding: ModifiedOf(physical.KeyLeftShift.Input(), physical.KeyW.Input()),
			want:    "key:leftshift+key:w",
		},
		{
			name:    "combo",
			binding: ComboOf(physical.KeyLeftCtrl.Input(), physical.KeyLeftShift.Input(), physical.KeyD.Input()),
			want:    "key:leftctrl+key:leftshift+key:d",
		},
		{
			name:    "analog",
			binding: AnalogOf(physical.PadLeftY.Input(), 0.5, 0.1),
			want:    "pad-axis:left-y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
