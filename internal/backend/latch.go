package backend

import (
	"sort"
	"time"

	"github.com/dshills/inputstorm/internal/input/device"
	"github.com/dshills/inputstorm/internal/input/physical"
)

// DefaultHold is how long a key stays pressed after its last event.
// Terminals report key-down only, so a key is released by silence; the
// window must outlast the terminal's auto-repeat initial delay or held
// keys flicker.
const DefaultHold = 750 * time.Millisecond

// KeyLatch synthesizes the key release edges terminals never deliver.
// Every observed press arms a per-key deadline; auto-repeat presses keep
// refreshing it, and Expire emits a release once the deadline passes.
type KeyLatch struct {
	hold    time.Duration
	pressed map[physical.KeyCode]time.Time
}

// NewKeyLatch creates a latch. A non-positive hold selects DefaultHold.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyLatch{
		hold:    hold,
		pressed: make(map[physical.KeyCode]time.Time),
	}
}

// Observe notes key transitions flowing to the adapters. Presses arm or
// refresh the key's deadline; real releases disarm it.
func (l *KeyLatch) Observe(e device.Event, now time.Time) {
	ke, ok := e.(device.KeyEvent)
	if !ok || ke.Key == physical.KeyNone {
		return
	}
	if ke.Pressed {
		l.pressed[ke.Key] = now
		return
	}
	delete(l.pressed, ke.Key)
}

// Expire returns synthesized releases for every key silent longer than
// the hold window, ordered by key code.
func (l *KeyLatch) Expire(now time.Time) []device.Event {
	var codes []physical.KeyCode
	for code, last := range l.pressed {
		if now.Sub(last) >= l.hold {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	out := make([]device.Event, 0, len(codes))
	for _, code := range codes {
		delete(l.pressed, code)
		out = append(out, device.KeyEvent{Key: code, Pressed: false})
	}
	return out
}

// HeldCount returns how many keys are currently latched.
func (l *KeyLatch) HeldCount() int {
	return len(l.pressed)
}

// Reset releases everything tracked, returning the synthesized events.
func (l *KeyLatch) Reset() []device.Event {
	codes := make([]physical.KeyCode, 0, len(l.pressed))
	for code := range l.pressed {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	out := make([]device.Event, 0, len(codes))
	for _, code := range codes {
		delete(l.pressed, code)
		out = append(out, device.KeyEvent{Key: code, Pressed: false})
	}
	return out
}
