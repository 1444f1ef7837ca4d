package physical

import (
	"fmt"
	"strings"
)

// PadButton identifies a gamepad button. Face buttons use positional names
// (south/east/west/north) so tables stay controller-brand neutral.
type PadButton uint16

const (
	// PadNone represents no button.
	PadNone PadButton = iota

	// Face buttons
	PadSouth
	PadEast
	PadWest
	PadNorth

	// Shoulder buttons
	PadLeftBumper
	PadRightBumper

	// Stick clicks
	PadLeftStick
	PadRightStick

	// Menu buttons
	PadStart
	PadSelect
	PadGuide

	// D-pad
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight
)

// Input returns the tagged Input identity for the button.
func (b PadButton) Input() Input {
	return Input{Device: DevicePadButton, Code: uint16(b)}
}

// String returns a human-readable name for the button.
func (b PadButton) String() string {
	switch b {
	case PadNone:
		return "None"
	case PadSouth:
		return "South"
	case PadEast:
		return "East"
	case PadWest:
		return "West"
	case PadNorth:
		return "North"
	case PadLeftBumper:
		return "LeftBumper"
	case PadRightBumper:
		return "RightBumper"
	case PadLeftStick:
		return "LeftStick"
	case PadRightStick:
		return "RightStick"
	case PadStart:
		return "Start"
	case PadSelect:
		return "Select"
	case PadGuide:
		return "Guide"
	case PadDPadUp:
		return "DPadUp"
	case PadDPadDown:
		return "DPadDown"
	case PadDPadLeft:
		return "DPadLeft"
	case PadDPadRight:
		return "DPadRight"
	default:
		return fmt.Sprintf("PadButton(%d)", b)
	}
}

// IsDPad returns true for the four d-pad directions.
func (b PadButton) IsDPad() bool {
	return b >= PadDPadUp && b <= PadDPadRight
}

// IsFaceButton returns true for the four positional face buttons.
func (b PadButton) IsFaceButton() bool {
	return b >= PadSouth && b <= PadNorth
}

// padButtonNameMap maps button names (lowercase) to PadButton values.
var padButtonNameMap = map[string]PadButton{
	"south":       PadSouth,
	"a":           PadSouth,
	"east":        PadEast,
	"b":           PadEast,
	"west":        PadWest,
	"x":           PadWest,
	"north":       PadNorth,
	"y":           PadNorth,
	"leftbumper":  PadLeftBumper,
	"lb":          PadLeftBumper,
	"rightbumper": PadRightBumper,
	"rb":          PadRightBumper,
	"leftstick":   PadLeftStick,
	"ls":          PadLeftStick,
	"rightstick":  PadRightStick,
	"rs":          PadRightStick,
	"start":       PadStart,
	"select":      PadSelect,
	"back":        PadSelect,
	"guide":       PadGuide,
	"dpadup":      PadDPadUp,
	"dpad-up":     PadDPadUp,
	"dpaddown":    PadDPadDown,
	"dpad-down":   PadDPadDown,
	"dpadleft":    PadDPadLeft,
	"dpad-left":   PadDPadLeft,
	"dpadright":   PadDPadRight,
	"dpad-right":  PadDPadRight,
}

// PadButtonFromName returns the PadButton for a given name
// (case-insensitive). Returns PadNone if the name is not recognized.
func PadButtonFromName(name string) PadButton {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := padButtonNameMap[name]; ok {
		return b
	}
	return PadNone
}

// PadAxis identifies a gamepad analog axis. Stick axes range [-1, 1] with
// up/left negative; trigger axes range [0, 1].
type PadAxis uint16

const (
	// PadAxisNone represents no axis.
	PadAxisNone PadAxis = iota
	// PadLeftX is the left stick horizontal axis.
	PadLeftX
	// PadLeftY is the left stick vertical axis.
	PadLeftY
	// PadRightX is the right stick horizontal axis.
	PadRightX
	// PadRightY is the right stick vertical axis.
	PadRightY
	// PadTriggerLeft is the left analog trigger.
	PadTriggerLeft
	// PadTriggerRight is the right analog trigger.
	PadTriggerRight
)

// Input returns the tagged Input identity for the axis.
func (a PadAxis) Input() Input {
	return Input{Device: DevicePadAxis, Code: uint16(a)}
}

// String returns a human-readable name for the axis.
func (a PadAxis) String() string {
	switch a {
	case PadAxisNone:
		return "None"
	case PadLeftX:
		return "Left-X"
	case PadLeftY:
		return "Left-Y"
	case PadRightX:
		return "Right-X"
	case PadRightY:
		return "Right-Y"
	case PadTriggerLeft:
		return "Trigger-Left"
	case PadTriggerRight:
		return "Trigger-Right"
	default:
		return fmt.Sprintf("PadAxis(%d)", a)
	}
}

// IsTrigger returns true for the analog triggers.
func (a PadAxis) IsTrigger() bool {
	return a == PadTriggerLeft || a == PadTriggerRight
}

// padAxisNameMap maps axis names (lowercase) to PadAxis values.
var padAxisNameMap = map[string]PadAxis{
	"left-x":        PadLeftX,
	"leftx":         PadLeftX,
	"left-y":        PadLeftY,
	"lefty":         PadLeftY,
	"right-x":       PadRightX,
	"rightx":        PadRightX,
	"right-y":       PadRightY,
	"righty":        PadRightY,
	"trigger-left":  PadTriggerLeft,
	"lt":            PadTriggerLeft,
	"trigger-right": PadTriggerRight,
	"rt":            PadTriggerRight,
}

// PadAxisFromName returns the PadAxis for a given name (case-insensitive).
// Returns PadAxisNone if the name is not recognized.
func PadAxisFromName(name string) PadAxis {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := padAxisNameMap[name]; ok {
		return a
	}
	return PadAxisNone
}
