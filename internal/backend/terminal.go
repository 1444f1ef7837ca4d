package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstorm/internal/input/device"
)

// Terminal drives a tcell screen as a device event source. PollEvent is
// meant to run on its own goroutine; drawing calls are serialized so the
// frame loop can render while the poll goroutine blocks.
type Terminal struct {
	screen tcell.Screen
	tr     translator
	mu     sync.Mutex
}

// NewTerminal creates a terminal over the process's tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init takes over the terminal and enables mouse and focus reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnableFocus()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Clear empties the pending draw buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// SetText draws a string starting at the given cell.
func (t *Terminal) SetText(x, y int, text string, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	col := x
	for _, r := range text {
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// PollEvent blocks for the next terminal event and returns its device
// translation. The second return is false once the screen is interrupted
// or finalized; resize events sync the screen and return an empty batch.
func (t *Terminal) PollEvent() ([]device.Event, bool) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil, false
	}
	switch ev.(type) {
	case *tcell.EventInterrupt:
		return nil, false
	case *tcell.EventResize:
		t.mu.Lock()
		t.screen.Sync()
		t.mu.Unlock()
		return nil, true
	default:
		return t.tr.Translate(ev), true
	}
}

// Interrupt wakes a blocked PollEvent so its goroutine can exit.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
