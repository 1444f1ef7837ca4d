package device

import (
	"time"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// KeyboardConfig configures keyboard adapter behavior.
type KeyboardConfig struct {
	// RepeatDelay is how long a key is held before synthetic repeats
	// start. Zero disables repeat.
	RepeatDelay time.Duration

	// RepeatInterval is the gap between synthetic repeats once started.
	RepeatInterval time.Duration

	// CaptureText collects rune input for TextInput.
	CaptureText bool
}

// DefaultKeyboardConfig returns typematic-style defaults.
func DefaultKeyboardConfig() KeyboardConfig {
	return KeyboardConfig{
		RepeatDelay:    400 * time.Millisecond,
		RepeatInterval: 50 * time.Millisecond,
		CaptureText:    true,
	}
}

// Keyboard accumulates key state between frames. Edges (just pressed,
// just released) and repeats are computed in Update by diffing against
// the previous frame, so event arrival order within a frame never
// matters.
type Keyboard struct {
	config KeyboardConfig

	down     map[physical.KeyCode]bool
	prevDown map[physical.KeyCode]bool

	held       map[physical.KeyCode]time.Duration
	nextRepeat map[physical.KeyCode]time.Duration

	justPressed  map[physical.KeyCode]bool
	justReleased map[physical.KeyCode]bool
	repeated     map[physical.KeyCode]bool

	pendingText []rune
	frameText   []rune
}

// NewKeyboard creates a keyboard adapter.
func NewKeyboard(config KeyboardConfig) *Keyboard {
	return &Keyboard{
		config:       config,
		down:         make(map[physical.KeyCode]bool),
		prevDown:     make(map[physical.KeyCode]bool),
		held:         make(map[physical.KeyCode]time.Duration),
		nextRepeat:   make(map[physical.KeyCode]time.Duration),
		justPressed:  make(map[physical.KeyCode]bool),
		justReleased: make(map[physical.KeyCode]bool),
		repeated:     make(map[physical.KeyCode]bool),
	}
}

// HandleEvent consumes key and text events; everything else is ignored
// and reported false.
func (k *Keyboard) HandleEvent(e Event) bool {
	switch ev := e.(type) {
	case KeyEvent:
		if ev.Key == physical.KeyNone {
			return true
		}
		if ev.Pressed {
			// Auto-repeat presses from the backend keep state as-is.
			if !k.down[ev.Key] {
				k.down[ev.Key] = true
				k.held[ev.Key] = 0
				k.nextRepeat[ev.Key] = k.config.RepeatDelay
			}
		} else {
			delete(k.down, ev.Key)
		}
		if k.config.CaptureText && ev.Pressed && ev.Rune != 0 {
			k.pendingText = append(k.pendingText, ev.Rune)
		}
		return true

	case TextEvent:
		if k.config.CaptureText {
			k.pendingText = append(k.pendingText, ev.Runes...)
		}
		return true
	}
	return false
}

// Update advances held durations and computes this frame's edges,
// repeats, and text.
func (k *Keyboard) Update(dt time.Duration) {
	clear(k.justPressed)
	clear(k.justReleased)
	clear(k.repeated)

	for code := range k.down {
		if !k.prevDown[code] {
			k.justPressed[code] = true
		}
	}
	for code := range k.prevDown {
		if !k.down[code] {
			k.justReleased[code] = true
			delete(k.held, code)
			delete(k.nextRepeat, code)
		}
	}

	for code := range k.down {
		if k.prevDown[code] {
			k.held[code] += dt
		}
		if k.config.RepeatDelay > 0 && k.held[code] >= k.nextRepeat[code] {
			k.repeated[code] = true
			k.nextRepeat[code] += k.config.RepeatInterval
		}
	}

	clear(k.prevDown)
	for code := range k.down {
		k.prevDown[code] = true
	}

	k.frameText = k.pendingText
	k.pendingText = nil
}

// Publish pushes current key state into the sink.
func (k *Keyboard) Publish(sink Sink) {
	for code := range k.down {
		sink.SetInputState(code.Input(), true)
	}
	for code := range k.justReleased {
		sink.SetInputState(code.Input(), false)
	}
}

// IsDown reports whether a key is currently held.
func (k *Keyboard) IsDown(code physical.KeyCode) bool {
	return k.down[code]
}

// JustPressed reports whether a key went down this frame.
func (k *Keyboard) JustPressed(code physical.KeyCode) bool {
	return k.justPressed[code]
}

// JustReleased reports whether a key went up this frame.
func (k *Keyboard) JustReleased(code physical.KeyCode) bool {
	return k.justReleased[code]
}

// Repeated reports whether a key fired its synthetic repeat this frame.
// The first frame a key goes down also reports true, so callers can
// treat "pressed or repeated" uniformly for text-style input.
func (k *Keyboard) Repeated(code physical.KeyCode) bool {
	return k.justPressed[code] || k.repeated[code]
}

// HeldDuration returns how long a key has been down, zero when it is not.
func (k *Keyboard) HeldDuration(code physical.KeyCode) time.Duration {
	return k.held[code]
}

// TextInput returns the printable input captured for this frame.
func (k *Keyboard) TextInput() []rune {
	return k.frameText
}

// Reset clears all keyboard state, as on focus loss.
func (k *Keyboard) Reset() {
	clear(k.down)
	clear(k.prevDown)
	clear(k.held)
	clear(k.nextRepeat)
	clear(k.justPressed)
	clear(k.justReleased)
	clear(k.repeated)
	k.pendingText = nil
	k.frameText = nil
}
