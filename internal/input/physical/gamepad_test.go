package physical

import (
	"testing"
)

func TestPadButtonAliases(t *testing.T) {
	// Brand-style letters map onto positional face buttons.
	tests := []struct {
		name string
		want PadButton
	}{
		{"a", PadSouth},
		{"b", PadEast},
		{"x", PadWest},
		{"y", PadNorth},
		{"lb", PadLeftBumper},
		{"rb", PadRightBumper},
		{"back", PadSelect},
		{"dpad-up", PadDPadUp},
		{"dpadup", PadDPadUp},
		{"nope", PadNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadButtonFromName(tt.name); got != tt.want {
				t.Errorf("PadButtonFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPadButtonClassification(t *testing.T) {
	if !PadDPadLeft.IsDPad() {
		t.Error("PadDPadLeft.IsDPad() = false, want true")
	}
	if PadSouth.IsDPad() {
		t.Error("PadSouth.IsDPad() = true, want false")
	}
	if !PadNorth.IsFaceButton() {
		t.Error("PadNorth.IsFaceButton() = false, want true")
	}
	if PadStart.IsFaceButton() {
		t.Error("PadStart.IsFaceButton() = true, want false")
	}
}

func TestPadAxisTriggers(t *testing.T) {
	if !PadTriggerLeft.IsTrigger() || !PadTriggerRight.IsTrigger() {
		t.Error("trigger axes should report IsTrigger")
	}
	if PadLeftX.IsTrigger() {
		t.Error("PadLeftX.IsTrigger() = true, want false")
	}
	if got := PadAxisFromName("lt"); got != PadTriggerLeft {
		t.Errorf("PadAxisFromName(\"lt\") = %v, want %v", got, PadTriggerLeft)
	}
}
