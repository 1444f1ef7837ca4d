package device

import (
	"time"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// GamepadConfig configures gamepad adapter behavior.
type GamepadConfig struct {
	// Deadzone is the hardware noise floor applied to incoming axis
	// values before any binding-level shaping. Sticks at rest rarely
	// report exactly zero.
	Deadzone float64
}

// DefaultGamepadConfig returns defaults suited to common pads.
func DefaultGamepadConfig() GamepadConfig {
	return GamepadConfig{Deadzone: 0.05}
}

// padState is one connected pad's current state.
type padState struct {
	name    string
	buttons map[physical.PadButton]bool
	axes    map[physical.PadAxis]float64
}

func newPadState(name string) *padState {
	return &padState{
		name:    name,
		buttons: make(map[physical.PadButton]bool),
		axes:    make(map[physical.PadAxis]float64),
	}
}

// Gamepads tracks every connected pad and publishes the primary one. The
// primary pad is the earliest-connected pad still present; it only
// changes when it disconnects, so a late reconnect never steals input.
type Gamepads struct {
	config GamepadConfig

	pads  map[int]*padState
	order []int

	prevButtons  map[physical.PadButton]bool
	justPressed  map[physical.PadButton]bool
	justReleased map[physical.PadButton]bool
}

// NewGamepads creates a gamepad adapter.
func NewGamepads(config GamepadConfig) *Gamepads {
	return &Gamepads{
		config:       config,
		pads:         make(map[int]*padState),
		prevButtons:  make(map[physical.PadButton]bool),
		justPressed:  make(map[physical.PadButton]bool),
		justReleased: make(map[physical.PadButton]bool),
	}
}

// HandleEvent consumes pad events; everything else is ignored and
// reported false.
func (g *Gamepads) HandleEvent(e Event) bool {
	switch ev := e.(type) {
	case PadConnectEvent:
		if pad, ok := g.pads[ev.Pad]; ok {
			pad.name = ev.Name
			return true
		}
		g.pads[ev.Pad] = newPadState(ev.Name)
		g.order = append(g.order, ev.Pad)
		return true

	case PadDisconnectEvent:
		if _, ok := g.pads[ev.Pad]; !ok {
			return true
		}
		delete(g.pads, ev.Pad)
		for i, id := range g.order {
			if id == ev.Pad {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
		return true

	case PadButtonEvent:
		pad, ok := g.pads[ev.Pad]
		if !ok || ev.Button == physical.PadNone {
			return true
		}
		if ev.Pressed {
			pad.buttons[ev.Button] = true
		} else {
			delete(pad.buttons, ev.Button)
		}
		return true

	case PadAxisEvent:
		pad, ok := g.pads[ev.Pad]
		if !ok || ev.Axis == physical.PadAxisNone {
			return true
		}
		pad.axes[ev.Axis] = g.shape(ev.Value)
		return true
	}
	return false
}

// HandleRawAxis feeds a signed 16-bit axis sample, the form most HID
// drivers report, normalizing it into [-1, 1].
func (g *Gamepads) HandleRawAxis(pad int, axis physical.PadAxis, raw int16) {
	g.HandleEvent(PadAxisEvent{
		Pad:   pad,
		Axis:  axis,
		Value: float64(raw) / 32767.0,
	})
}

// shape clamps an axis value and applies the hardware deadzone.
func (g *Gamepads) shape(v float64) float64 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	if v < g.config.Deadzone && v > -g.config.Deadzone {
		return 0.0
	}
	return v
}

// Update computes this frame's button edges for the primary pad.
func (g *Gamepads) Update(_ time.Duration) {
	clear(g.justPressed)
	clear(g.justReleased)

	var current map[physical.PadButton]bool
	if pad := g.primaryState(); pad != nil {
		current = pad.buttons
	}

	for b := range current {
		if !g.prevButtons[b] {
			g.justPressed[b] = true
		}
	}
	for b := range g.prevButtons {
		if !current[b] {
			g.justReleased[b] = true
		}
	}
	clear(g.prevButtons)
	for b := range current {
		g.prevButtons[b] = true
	}
}

// Publish pushes the primary pad's state into the sink. Every pad input
// is written each frame, so a disconnect settles everything back to
// released and centered.
func (g *Gamepads) Publish(sink Sink) {
	pad := g.primaryState()

	for b := physical.PadSouth; b <= physical.PadDPadRight; b++ {
		pressed := pad != nil && pad.buttons[b]
		sink.SetInputState(b.Input(), pressed)
	}
	for a := physical.PadLeftX; a <= physical.PadTriggerRight; a++ {
		value := 0.0
		if pad != nil {
			value = pad.axes[a]
		}
		sink.SetInputValue(a.Input(), value)
	}
}

func (g *Gamepads) primaryState() *padState {
	if len(g.order) == 0 {
		return nil
	}
	return g.pads[g.order[0]]
}

// Primary returns the primary pad id.
func (g *Gamepads) Primary() (int, bool) {
	if len(g.order) == 0 {
		return 0, false
	}
	return g.order[0], true
}

// Connected returns the connected pad ids in connect order.
func (g *Gamepads) Connected() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// Name returns a connected pad's reported name.
func (g *Gamepads) Name(pad int) string {
	if p, ok := g.pads[pad]; ok {
		return p.name
	}
	return ""
}

// IsDown reports whether a primary pad button is currently held.
func (g *Gamepads) IsDown(b physical.PadButton) bool {
	pad := g.primaryState()
	return pad != nil && pad.buttons[b]
}

// Axis returns a primary pad axis value.
func (g *Gamepads) Axis(a physical.PadAxis) float64 {
	if pad := g.primaryState(); pad != nil {
		return pad.axes[a]
	}
	return 0.0
}

// JustPressed reports whether a primary pad button went down this frame.
func (g *Gamepads) JustPressed(b physical.PadButton) bool {
	return g.justPressed[b]
}

// JustReleased reports whether a primary pad button went up this frame.
func (g *Gamepads) JustReleased(b physical.PadButton) bool {
	return g.justReleased[b]
}

// Reset clears button and axis state on every pad, keeping connections.
func (g *Gamepads) Reset() {
	for _, pad := range g.pads {
		clear(pad.buttons)
		clear(pad.axes)
	}
	clear(g.prevButtons)
	clear(g.justPressed)
	clear(g.justReleased)
}
