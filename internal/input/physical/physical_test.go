package physical

import (
	"testing"
)

func TestInputIdentity(t *testing.T) {
	if KeyW.Input() != KeyW.Input() {
		t.Error("identical key inputs should compare equal")
	}
	if KeyW.Input() == KeyS.Input() {
		t.Error("different keys should not compare equal")
	}

	// Same code, different device class must stay distinct.
	if a, b := MouseLeft.Input(), PadButton(MouseLeft).Input(); a == b {
		t.Error("same code on different devices should not compare equal")
	}

	// Inputs must work as map keys.
	m := map[Input]bool{
		KeyW.Input():      true,
		MouseLeft.Input(): true,
		PadSouth.Input():  true,
	}
	if !m[KeyW.Input()] {
		t.Error("map lookup by key input failed")
	}
	if m[KeyS.Input()] {
		t.Error("map lookup for unset input should be false")
	}
}

func TestInputIsValid(t *testing.T) {
	var zero Input
	if zero.IsValid() {
		t.Error("zero Input should be invalid")
	}
	if !KeyW.Input().IsValid() {
		t.Error("key input should be valid")
	}
}

func TestInputIsAxis(t *testing.T) {
	tests := []struct {
		in   Input
		want bool
	}{
		{KeyW.Input(), false},
		{MouseLeft.Input(), false},
		{MouseX.Input(), true},
		{MouseScrollY.Input(), true},
		{PadSouth.Input(), false},
		{PadLeftX.Input(), true},
		{PadTriggerRight.Input(), true},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.IsAxis(); got != tt.want {
				t.Errorf("IsAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputString(t *testing.T) {
	tests := []struct {
		in   Input
		want string
	}{
		{KeyW.Input(), "key:w"},
		{KeyEscape.Input(), "key:escape"},
		{KeyF5.Input(), "key:f5"},
		{MouseLeft.Input(), "mouse:left"},
		{MouseX.Input(), "mouse-axis:x"},
		{MouseScrollY.Input(), "mouse-axis:scroll-y"},
		{PadSouth.Input(), "pad:south"},
		{PadDPadUp.Input(), "pad:dpadup"},
		{PadLeftX.Input(), "pad-axis:left-x"},
		{PadTriggerLeft.Input(), "pad-axis:trigger-left"},
		{Input{}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("Input.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		text    string
		want    Input
		wantErr bool
	}{
		{"key:w", KeyW.Input(), false},
		{"KEY:W", KeyW.Input(), false},
		{" key : space ", KeySpace.Input(), false},
		{"key:esc", KeyEscape.Input(), false},
		{"mouse:left", MouseLeft.Input(), false},
		{"mouse:middle", MouseMiddle.Input(), false},
		{"mouse-axis:y", MouseY.Input(), false},
		{"mouse-axis:scroll-x", MouseScrollX.Input(), false},
		{"pad:south", PadSouth.Input(), false},
		{"pad:lb", PadLeftBumper.Input(), false},
		{"pad-axis:left-y", PadLeftY.Input(), false},
		{"pad-axis:rt", PadTriggerRight.Input(), false},
		{"w", Input{}, true},
		{"key:notakey", Input{}, true},
		{"mouse:teal", Input{}, true},
		{"mouse-axis:w", Input{}, true},
		{"pad:escape", Input{}, true},
		{"pad-axis:up", Input{}, true},
		{"joystick:up", Input{}, true},
		{"", Input{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseInput(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInput(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseInput(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInputRoundTrip(t *testing.T) {
	inputs := []Input{}
	for k := KeyA; k <= KeySuper; k++ {
		inputs = append(inputs, k.Input())
	}
	for b := MouseLeft; b <= MouseExtra2; b++ {
		inputs = append(inputs, b.Input())
	}
	for a := MouseX; a <= MouseScrollY; a++ {
		inputs = append(inputs, a.Input())
	}
	for b := PadSouth; b <= PadDPadRight; b++ {
		inputs = append(inputs, b.Input())
	}
	for a := PadLeftX; a <= PadTriggerRight; a++ {
		inputs = append(inputs, a.Input())
	}

	for _, in := range inputs {
		got, err := ParseInput(in.String())
		if err != nil {
			t.Fatalf("ParseInput(%q) unexpected error: %v", in.String(), err)
		}
		if got != in {
			t.Errorf("round trip %q = %v, want %v", in.String(), got, in)
		}
	}
}

func TestMustParseInput(t *testing.T) {
	if got := MustParseInput("key:w"); got != KeyW.Input() {
		t.Errorf("MustParseInput(\"key:w\") = %v, want %v", got, KeyW.Input())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseInput with bad text should panic")
		}
	}()
	MustParseInput("bogus")
}
