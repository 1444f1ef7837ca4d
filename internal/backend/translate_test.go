package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstorm/internal/input/device"
	"github.com/dshills/inputstorm/internal/input/physical"
)

func keyAt(t *testing.T, events []device.Event, i int) device.KeyEvent {
	t.Helper()
	if i >= len(events) {
		t.Fatalf("want key event at %d, have %d events", i, len(events))
	}
	ke, ok := events[i].(device.KeyEvent)
	if !ok {
		t.Fatalf("events[%d] = %T, want device.KeyEvent", i, events[i])
	}
	return ke
}

func TestTranslateRune(t *testing.T) {
	var tr translator

	events := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}

	ke := keyAt(t, events, 0)
	if ke.Key != physical.KeyA || ke.Rune != 'a' || !ke.Pressed {
		t.Errorf("key event = %+v, want KeyA 'a' pressed", ke)
	}

	te, ok := events[1].(device.TextEvent)
	if !ok {
		t.Fatalf("events[1] = %T, want device.TextEvent", events[1])
	}
	if string(te.Runes) != "a" {
		t.Errorf("text = %q, want 'a'", string(te.Runes))
	}
}

func TestTranslateCapitalSynthesizesShift(t *testing.T) {
	var tr translator

	events := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'J', tcell.ModNone))
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(events), events)
	}
	if ke := keyAt(t, events, 0); ke.Key != physical.KeyLeftShift || !ke.Pressed {
		t.Errorf("events[0] = %+v, want leftshift press", ke)
	}
	if ke := keyAt(t, events, 1); ke.Key != physical.KeyJ || ke.Rune != 'J' {
		t.Errorf("events[1] = %+v, want KeyJ", ke)
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		want physical.KeyCode
	}{
		{"escape", tcell.KeyEscape, physical.KeyEscape},
		{"enter", tcell.KeyEnter, physical.KeyEnter},
		{"tab", tcell.KeyTab, physical.KeyTab},
		{"backspace", tcell.KeyBackspace2, physical.KeyBackspace},
		{"up", tcell.KeyUp, physical.KeyUp},
		{"left", tcell.KeyLeft, physical.KeyLeft},
		{"page up", tcell.KeyPgUp, physical.KeyPageUp},
		{"f1", tcell.KeyF1, physical.KeyF1},
		{"f12", tcell.KeyF12, physical.KeyF12},
		{"home", tcell.KeyHome, physical.KeyHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr translator
			events := tr.Translate(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1: %v", len(events), events)
			}
			if ke := keyAt(t, events, 0); ke.Key != tt.want || !ke.Pressed {
				t.Errorf("key = %v pressed=%v, want %v pressed", ke.Key, ke.Pressed, tt.want)
			}
		})
	}
}

func TestTranslateCtrlChord(t *testing.T) {
	// Terminals that do not report the modifier still deliver the
	// control code; ctrl is synthesized from it.
	var tr translator
	events := tr.Translate(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModNone))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}
	if ke := keyAt(t, events, 0); ke.Key != physical.KeyLeftCtrl || !ke.Pressed {
		t.Errorf("events[0] = %+v, want leftctrl press", ke)
	}
	if ke := keyAt(t, events, 1); ke.Key != physical.KeyD {
		t.Errorf("events[1] = %+v, want KeyD", ke)
	}

	// With the modifier reported, ctrl comes from the mask alone
	tr = translator{}
	events = tr.Translate(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}
	if ke := keyAt(t, events, 0); ke.Key != physical.KeyLeftCtrl || !ke.Pressed {
		t.Errorf("events[0] = %+v, want leftctrl press", ke)
	}
}

func TestTranslateCtrlSuppressesText(t *testing.T) {
	var tr translator
	events := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl))
	for _, e := range events {
		if _, ok := e.(device.TextEvent); ok {
			t.Errorf("ctrl chord produced text event: %v", events)
		}
	}
}

func TestTranslateModifierRelease(t *testing.T) {
	var tr translator

	tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt))

	// The next unmodified event releases alt before anything else
	events := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	ke := keyAt(t, events, 0)
	if ke.Key != physical.KeyLeftAlt || ke.Pressed {
		t.Errorf("events[0] = %+v, want leftalt release", ke)
	}
	if ke := keyAt(t, events, 1); ke.Key != physical.KeyB || !ke.Pressed {
		t.Errorf("events[1] = %+v, want KeyB press", ke)
	}
}

func TestTranslateModifierReassertedEachEvent(t *testing.T) {
	var tr translator

	first := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModShift))
	second := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModShift))

	for i, events := range [][]device.Event{first, second} {
		if ke := keyAt(t, events, 0); ke.Key != physical.KeyLeftShift || !ke.Pressed {
			t.Errorf("batch %d events[0] = %+v, want leftshift press", i, ke)
		}
	}
}

func TestTranslateMouseButtons(t *testing.T) {
	var tr translator

	events := tr.Translate(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	if len(events) != 2 {
		t.Fatalf("got %d events, want move+press: %v", len(events), events)
	}
	mv, ok := events[0].(device.MouseMoveEvent)
	if !ok || mv.X != 5 || mv.Y != 3 {
		t.Errorf("events[0] = %+v, want move to (5, 3)", events[0])
	}
	mb, ok := events[1].(device.MouseButtonEvent)
	if !ok || mb.Button != physical.MouseLeft || !mb.Pressed {
		t.Errorf("events[1] = %+v, want left press", events[1])
	}
	if mb.X != 5 || mb.Y != 3 {
		t.Errorf("press position = (%d, %d), want (5, 3)", mb.X, mb.Y)
	}

	// Same position, empty mask: release only
	events = tr.Translate(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	if len(events) != 1 {
		t.Fatalf("got %d events, want release only: %v", len(events), events)
	}
	mb, ok = events[0].(device.MouseButtonEvent)
	if !ok || mb.Button != physical.MouseLeft || mb.Pressed {
		t.Errorf("events[0] = %+v, want left release", events[0])
	}
}

func TestTranslateSecondaryButtons(t *testing.T) {
	tests := []struct {
		name string
		mask tcell.ButtonMask
		want physical.MouseButton
	}{
		{"right", tcell.Button2, physical.MouseRight},
		{"middle", tcell.Button3, physical.MouseMiddle},
		{"extra1", tcell.Button4, physical.MouseExtra1},
		{"extra2", tcell.Button5, physical.MouseExtra2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := translator{havePos: true}
			events := tr.Translate(tcell.NewEventMouse(0, 0, tt.mask, tcell.ModNone))
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1: %v", len(events), events)
			}
			mb, ok := events[0].(device.MouseButtonEvent)
			if !ok || mb.Button != tt.want || !mb.Pressed {
				t.Errorf("events[0] = %+v, want %v press", events[0], tt.want)
			}
		})
	}
}

func TestTranslateWheel(t *testing.T) {
	tr := translator{havePos: true}

	events := tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %v", len(events), events)
	}
	sc, ok := events[0].(device.ScrollEvent)
	if !ok || sc.DY != 1 || sc.DX != 0 {
		t.Errorf("events[0] = %+v, want scroll dy=1", events[0])
	}

	// Momentary wheel bits never leave a phantom release behind
	events = tr.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if len(events) != 0 {
		t.Errorf("follow-up events = %v, want none", events)
	}

	events = tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if sc, ok = events[0].(device.ScrollEvent); !ok || sc.DY != -1 {
		t.Errorf("wheel down = %+v, want scroll dy=-1", events[0])
	}
}

func TestTranslateFocus(t *testing.T) {
	var tr translator

	events := tr.Translate(tcell.NewEventFocus(true))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if _, ok := events[0].(device.MouseEnterEvent); !ok {
		t.Errorf("events[0] = %T, want MouseEnterEvent", events[0])
	}

	events = tr.Translate(tcell.NewEventFocus(false))
	if _, ok := events[0].(device.MouseLeaveEvent); !ok {
		t.Errorf("events[0] = %T, want MouseLeaveEvent", events[0])
	}
}

func TestTranslateUnhandledKinds(t *testing.T) {
	var tr translator
	if events := tr.Translate(tcell.NewEventResize(80, 24)); events != nil {
		t.Errorf("resize translated to %v, want nil", events)
	}
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r       rune
		want    physical.KeyCode
		shifted bool
	}{
		{'a', physical.KeyA, false},
		{'z', physical.KeyZ, false},
		{'A', physical.KeyA, true},
		{'Z', physical.KeyZ, true},
		{'0', physical.Key0, false},
		{'9', physical.Key9, false},
		{' ', physical.KeySpace, false},
		{'?', physical.KeyNone, false},
		{'é', physical.KeyNone, false},
	}

	for _, tt := range tests {
		code, shifted := keyForRune(tt.r)
		if code != tt.want || shifted != tt.shifted {
			t.Errorf("keyForRune(%q) = (%v, %v), want (%v, %v)", tt.r, code, shifted, tt.want, tt.shifted)
		}
	}
}
