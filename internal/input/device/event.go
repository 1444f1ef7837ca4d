package device

import (
	"time"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// Event is one raw device occurrence. The set of shapes is closed; every
// variant routes to exactly one adapter.
type Event interface {
	isDeviceEvent()
}

// KeyEvent reports a key transition. Terminals that auto-repeat deliver
// extra pressed events for a held key; adapters ignore those.
type KeyEvent struct {
	Key     physical.KeyCode
	Rune    rune
	Pressed bool
}

func (KeyEvent) isDeviceEvent() {}

// TextEvent delivers printable input separately from key transitions, so
// text capture survives layout differences.
type TextEvent struct {
	Runes []rune
}

func (TextEvent) isDeviceEvent() {}

// MouseButtonEvent reports a button transition at a position. A zero Time
// is stamped on receipt.
type MouseButtonEvent struct {
	Button  physical.MouseButton
	Pressed bool
	X, Y    int
	Time    time.Time
}

func (MouseButtonEvent) isDeviceEvent() {}

// MouseMoveEvent reports the pointer's new position.
type MouseMoveEvent struct {
	X, Y int
}

func (MouseMoveEvent) isDeviceEvent() {}

// ScrollEvent reports wheel movement in ticks.
type ScrollEvent struct {
	DX, DY float64
}

func (ScrollEvent) isDeviceEvent() {}

// MouseEnterEvent reports the pointer entering the window.
type MouseEnterEvent struct{}

func (MouseEnterEvent) isDeviceEvent() {}

// MouseLeaveEvent reports the pointer leaving the window. Held buttons
// are released so no press survives outside the window.
type MouseLeaveEvent struct{}

func (MouseLeaveEvent) isDeviceEvent() {}

// PadConnectEvent reports a gamepad appearing.
type PadConnectEvent struct {
	Pad  int
	Name string
}

func (PadConnectEvent) isDeviceEvent() {}

// PadDisconnectEvent reports a gamepad going away.
type PadDisconnectEvent struct {
	Pad int
}

func (PadDisconnectEvent) isDeviceEvent() {}

// PadButtonEvent reports a gamepad button transition.
type PadButtonEvent struct {
	Pad     int
	Button  physical.PadButton
	Pressed bool
}

func (PadButtonEvent) isDeviceEvent() {}

// PadAxisEvent reports a gamepad axis position in [-1, 1].
type PadAxisEvent struct {
	Pad   int
	Axis  physical.PadAxis
	Value float64
}

func (PadAxisEvent) isDeviceEvent() {}
