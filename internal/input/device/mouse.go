package device

import (
	"time"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// Position is a pointer coordinate in window space.
type Position struct {
	X, Y int
}

// Distance returns the Manhattan distance between two positions. Good
// enough for click proximity and cheap on the hot path.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// MouseConfig configures mouse adapter behavior.
type MouseConfig struct {
	// ClickTime is the maximum gap between presses in a click streak.
	ClickTime time.Duration

	// ClickDistance is the maximum Manhattan distance between presses
	// in a click streak.
	ClickDistance int

	// Sensitivity scales pixel deltas into axis values. The default
	// maps 100 px per frame to a full-scale 1.0.
	Sensitivity float64

	// ScrollScale scales wheel ticks into axis values.
	ScrollScale float64
}

// DefaultMouseConfig returns conventional desktop defaults.
func DefaultMouseConfig() MouseConfig {
	return MouseConfig{
		ClickTime:     400 * time.Millisecond,
		ClickDistance: 4,
		Sensitivity:   0.01,
		ScrollScale:   1.0,
	}
}

// clickTracker detects click streaks (double, triple). The count wraps
// back to 1 after 3.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// recordClick records a press and returns the streak count. A zero
// timestamp is stamped with the current time.
func (t *clickTracker) recordClick(pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.partOfStreak(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

func (t *clickTracker) partOfStreak(pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastPos = Position{}
	t.lastTime = time.Time{}
	t.lastCount = 0
}

// Mouse accumulates pointer state between frames. Movement and scroll
// are published as per-frame deltas that settle back to zero when the
// pointer rests, so analog bindings on mouse axes release naturally.
type Mouse struct {
	config MouseConfig

	pos    Position
	hasPos bool
	inside bool

	pendingDX, pendingDY int
	frameDX, frameDY     int

	pendingScrollX, pendingScrollY float64
	frameScrollX, frameScrollY     float64

	down     map[physical.MouseButton]bool
	prevDown map[physical.MouseButton]bool

	justPressed  map[physical.MouseButton]bool
	justReleased map[physical.MouseButton]bool

	click  clickTracker
	streak int
}

// NewMouse creates a mouse adapter.
func NewMouse(config MouseConfig) *Mouse {
	return &Mouse{
		config: config,
		click: clickTracker{
			maxTime:     config.ClickTime,
			maxDistance: config.ClickDistance,
		},
		down:         make(map[physical.MouseButton]bool),
		prevDown:     make(map[physical.MouseButton]bool),
		justPressed:  make(map[physical.MouseButton]bool),
		justReleased: make(map[physical.MouseButton]bool),
	}
}

// HandleEvent consumes mouse events; everything else is ignored and
// reported false.
func (m *Mouse) HandleEvent(e Event) bool {
	switch ev := e.(type) {
	case MouseButtonEvent:
		if ev.Button == physical.MouseNone {
			return true
		}
		if ev.Pressed {
			if !m.down[ev.Button] {
				m.down[ev.Button] = true
				m.streak = m.click.recordClick(Position{X: ev.X, Y: ev.Y}, ev.Time)
			}
		} else {
			delete(m.down, ev.Button)
		}
		return true

	case MouseMoveEvent:
		next := Position{X: ev.X, Y: ev.Y}
		if m.hasPos {
			m.pendingDX += next.X - m.pos.X
			m.pendingDY += next.Y - m.pos.Y
		}
		m.pos = next
		m.hasPos = true
		return true

	case ScrollEvent:
		m.pendingScrollX += ev.DX
		m.pendingScrollY += ev.DY
		return true

	case MouseEnterEvent:
		m.inside = true
		return true

	case MouseLeaveEvent:
		m.inside = false
		clear(m.down)
		m.click.reset()
		return true
	}
	return false
}

// Update latches this frame's deltas and computes button edges.
func (m *Mouse) Update(_ time.Duration) {
	clear(m.justPressed)
	clear(m.justReleased)

	for b := range m.down {
		if !m.prevDown[b] {
			m.justPressed[b] = true
		}
	}
	for b := range m.prevDown {
		if !m.down[b] {
			m.justReleased[b] = true
		}
	}
	clear(m.prevDown)
	for b := range m.down {
		m.prevDown[b] = true
	}

	m.frameDX, m.frameDY = m.pendingDX, m.pendingDY
	m.pendingDX, m.pendingDY = 0, 0

	m.frameScrollX, m.frameScrollY = m.pendingScrollX, m.pendingScrollY
	m.pendingScrollX, m.pendingScrollY = 0, 0
}

// Publish pushes button state and delta axes into the sink.
func (m *Mouse) Publish(sink Sink) {
	for b := range m.down {
		sink.SetInputState(b.Input(), true)
	}
	for b := range m.justReleased {
		sink.SetInputState(b.Input(), false)
	}

	sink.SetInputValue(physical.MouseX.Input(), float64(m.frameDX)*m.config.Sensitivity)
	sink.SetInputValue(physical.MouseY.Input(), float64(m.frameDY)*m.config.Sensitivity)
	sink.SetInputValue(physical.MouseScrollX.Input(), m.frameScrollX*m.config.ScrollScale)
	sink.SetInputValue(physical.MouseScrollY.Input(), m.frameScrollY*m.config.ScrollScale)
}

// Position returns the pointer's current position.
func (m *Mouse) Position() Position {
	return m.pos
}

// Inside reports whether the pointer is inside the window.
func (m *Mouse) Inside() bool {
	return m.inside
}

// Delta returns this frame's movement in pixels.
func (m *Mouse) Delta() (dx, dy int) {
	return m.frameDX, m.frameDY
}

// Scroll returns this frame's wheel movement in ticks.
func (m *Mouse) Scroll() (dx, dy float64) {
	return m.frameScrollX, m.frameScrollY
}

// IsDown reports whether a button is currently held.
func (m *Mouse) IsDown(b physical.MouseButton) bool {
	return m.down[b]
}

// JustPressed reports whether a button went down this frame.
func (m *Mouse) JustPressed(b physical.MouseButton) bool {
	return m.justPressed[b]
}

// JustReleased reports whether a button went up this frame.
func (m *Mouse) JustReleased(b physical.MouseButton) bool {
	return m.justReleased[b]
}

// ClickStreak returns the streak count of the most recent press: 1 for a
// single click, 2 for a double, 3 for a triple.
func (m *Mouse) ClickStreak() int {
	return m.streak
}

// Reset clears all mouse state, as on focus loss.
func (m *Mouse) Reset() {
	clear(m.down)
	clear(m.prevDown)
	clear(m.justPressed)
	clear(m.justReleased)
	m.pendingDX, m.pendingDY = 0, 0
	m.frameDX, m.frameDY = 0, 0
	m.pendingScrollX, m.pendingScrollY = 0, 0
	m.frameScrollX, m.frameScrollY = 0, 0
	m.click.reset()
	m.streak = 0
	m.hasPos = false
}
