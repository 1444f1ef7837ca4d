package physical

import (
	"fmt"
	"strings"
)

// MouseButton identifies a mouse button.
type MouseButton uint16

const (
	// MouseNone represents no button.
	MouseNone MouseButton = iota
	// MouseLeft is the primary button.
	MouseLeft
	// MouseRight is the secondary button.
	MouseRight
	// MouseMiddle is the wheel button.
	MouseMiddle
	// MouseExtra1 is the first extra (side) button.
	MouseExtra1
	// MouseExtra2 is the second extra (side) button.
	MouseExtra2
)

// Input returns the tagged Input identity for the button.
func (b MouseButton) Input() Input {
	return Input{Device: DeviceMouseButton, Code: uint16(b)}
}

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseNone:
		return "None"
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseExtra1:
		return "Extra1"
	case MouseExtra2:
		return "Extra2"
	default:
		return fmt.Sprintf("MouseButton(%d)", b)
	}
}

// mouseButtonNameMap maps button names (lowercase) to MouseButton values.
var mouseButtonNameMap = map[string]MouseButton{
	"left":   MouseLeft,
	"right":  MouseRight,
	"middle": MouseMiddle,
	"extra1": MouseExtra1,
	"extra2": MouseExtra2,
}

// MouseButtonFromName returns the MouseButton for a given name
// (case-insensitive). Returns MouseNone if the name is not recognized.
func MouseButtonFromName(name string) MouseButton {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := mouseButtonNameMap[name]; ok {
		return b
	}
	return MouseNone
}

// MouseAxis identifies a relative mouse axis. Motion axes carry per-frame
// deltas, not absolute positions; scroll axes carry per-frame scroll steps.
// All of them settle back to zero on frames without movement.
type MouseAxis uint16

const (
	// MouseAxisNone represents no axis.
	MouseAxisNone MouseAxis = iota
	// MouseX is horizontal motion delta.
	MouseX
	// MouseY is vertical motion delta.
	MouseY
	// MouseScrollX is horizontal scroll delta.
	MouseScrollX
	// MouseScrollY is vertical scroll delta.
	MouseScrollY
)

// Input returns the tagged Input identity for the axis.
func (a MouseAxis) Input() Input {
	return Input{Device: DeviceMouseAxis, Code: uint16(a)}
}

// String returns a human-readable name for the axis.
func (a MouseAxis) String() string {
	switch a {
	case MouseAxisNone:
		return "None"
	case MouseX:
		return "X"
	case MouseY:
		return "Y"
	case MouseScrollX:
		return "Scroll-X"
	case MouseScrollY:
		return "Scroll-Y"
	default:
		return fmt.Sprintf("MouseAxis(%d)", a)
	}
}

// mouseAxisNameMap maps axis names (lowercase) to MouseAxis values.
var mouseAxisNameMap = map[string]MouseAxis{
	"x":        MouseX,
	"y":        MouseY,
	"scroll-x": MouseScrollX,
	"scrollx":  MouseScrollX,
	"scroll-y": MouseScrollY,
	"scrolly":  MouseScrollY,
}

// MouseAxisFromName returns the MouseAxis for a given name
// (case-insensitive). Returns MouseAxisNone if the name is not recognized.
func MouseAxisFromName(name string) MouseAxis {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := mouseAxisNameMap[name]; ok {
		return a
	}
	return MouseAxisNone
}
