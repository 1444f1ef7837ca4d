package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstorm/internal/input/device"
	"github.com/dshills/inputstorm/internal/input/physical"
)

// translator converts tcell events into device events. It carries the
// previous mouse button mask and modifier mask so transitions can be
// synthesized from tcell's absolute snapshots.
type translator struct {
	prevButtons tcell.ButtonMask
	prevMods    tcell.ModMask
	prevX       int
	prevY       int
	havePos     bool
}

// Translate returns the device events for one tcell event. Unhandled
// event kinds return nil.
func (tr *translator) Translate(ev tcell.Event) []device.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return tr.keyEvents(e)
	case *tcell.EventMouse:
		return tr.mouseEvents(e)
	case *tcell.EventFocus:
		if e.Focused {
			return []device.Event{device.MouseEnterEvent{}}
		}
		return []device.Event{device.MouseLeaveEvent{}}
	default:
		return nil
	}
}

func (tr *translator) keyEvents(e *tcell.EventKey) []device.Event {
	out := tr.applyMods(nil, e.Modifiers())

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		code, shifted := keyForRune(r)
		if shifted {
			out = append(out, device.KeyEvent{Key: physical.KeyLeftShift, Pressed: true})
		}
		if code != physical.KeyNone {
			out = append(out, device.KeyEvent{Key: code, Rune: r, Pressed: true})
		}
		if e.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			out = append(out, device.TextEvent{Runes: []rune{r}})
		}
		return out
	}

	code, ctrl := keyForTcell(e.Key())
	if ctrl && e.Modifiers()&tcell.ModCtrl == 0 {
		out = append(out, device.KeyEvent{Key: physical.KeyLeftCtrl, Pressed: true})
	}
	if code != physical.KeyNone {
		out = append(out, device.KeyEvent{Key: code, Pressed: true})
	}
	return out
}

func (tr *translator) mouseEvents(e *tcell.EventMouse) []device.Event {
	out := tr.applyMods(nil, e.Modifiers())

	x, y := e.Position()
	if !tr.havePos || x != tr.prevX || y != tr.prevY {
		out = append(out, device.MouseMoveEvent{X: x, Y: y})
		tr.prevX, tr.prevY = x, y
		tr.havePos = true
	}

	buttons := e.Buttons()
	for _, m := range buttonMap {
		now := buttons&m.mask != 0
		was := tr.prevButtons&m.mask != 0
		if now != was {
			out = append(out, device.MouseButtonEvent{Button: m.button, Pressed: now, X: x, Y: y})
		}
	}
	tr.prevButtons = buttons &^ wheelBits

	if dx, dy := wheelTicks(buttons); dx != 0 || dy != 0 {
		out = append(out, device.ScrollEvent{DX: dx, DY: dy})
	}
	return out
}

// applyMods synthesizes modifier key transitions from the event's
// modifier mask. Active modifiers are re-asserted on every event so the
// key latch keeps them alive while events flow; dropped modifiers release
// immediately.
func (tr *translator) applyMods(out []device.Event, mods tcell.ModMask) []device.Event {
	for _, m := range modMap {
		switch {
		case mods&m.mask != 0:
			out = append(out, device.KeyEvent{Key: m.key, Pressed: true})
		case tr.prevMods&m.mask != 0:
			out = append(out, device.KeyEvent{Key: m.key, Pressed: false})
		}
	}
	tr.prevMods = mods
	return out
}

var modMap = []struct {
	mask tcell.ModMask
	key  physical.KeyCode
}{
	{tcell.ModShift, physical.KeyLeftShift},
	{tcell.ModCtrl, physical.KeyLeftCtrl},
	{tcell.ModAlt, physical.KeyLeftAlt},
	{tcell.ModMeta, physical.KeySuper},
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button physical.MouseButton
}{
	{tcell.Button1, physical.MouseLeft},
	{tcell.Button2, physical.MouseRight},
	{tcell.Button3, physical.MouseMiddle},
	{tcell.Button4, physical.MouseExtra1},
	{tcell.Button5, physical.MouseExtra2},
}

const wheelBits = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// wheelTicks reads the momentary wheel bits. Up and right are positive.
func wheelTicks(buttons tcell.ButtonMask) (dx, dy float64) {
	if buttons&tcell.WheelUp != 0 {
		dy++
	}
	if buttons&tcell.WheelDown != 0 {
		dy--
	}
	if buttons&tcell.WheelRight != 0 {
		dx++
	}
	if buttons&tcell.WheelLeft != 0 {
		dx--
	}
	return dx, dy
}

// keyForRune maps a printable rune to its key. Capitals report the
// shifted base letter.
func keyForRune(r rune) (code physical.KeyCode, shifted bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return physical.KeyA + physical.KeyCode(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return physical.KeyA + physical.KeyCode(r-'A'), true
	case r >= '0' && r <= '9':
		return physical.Key0 + physical.KeyCode(r-'0'), false
	case r == ' ':
		return physical.KeySpace, false
	default:
		return physical.KeyNone, false
	}
}

// keyForTcell maps a non-rune tcell key. Control chords report the base
// letter with ctrl set; tab, enter, escape, and backspace keep their own
// identities even though they share control codes.
func keyForTcell(k tcell.Key) (code physical.KeyCode, ctrl bool) {
	switch k {
	case tcell.KeyEnter:
		return physical.KeyEnter, false
	case tcell.KeyTab:
		return physical.KeyTab, false
	case tcell.KeyEscape:
		return physical.KeyEscape, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return physical.KeyBackspace, false
	case tcell.KeyDelete:
		return physical.KeyDelete, false
	case tcell.KeyInsert:
		return physical.KeyInsert, false
	case tcell.KeyHome:
		return physical.KeyHome, false
	case tcell.KeyEnd:
		return physical.KeyEnd, false
	case tcell.KeyPgUp:
		return physical.KeyPageUp, false
	case tcell.KeyPgDn:
		return physical.KeyPageDown, false
	case tcell.KeyUp:
		return physical.KeyUp, false
	case tcell.KeyDown:
		return physical.KeyDown, false
	case tcell.KeyLeft:
		return physical.KeyLeft, false
	case tcell.KeyRight:
		return physical.KeyRight, false
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return physical.KeyF1 + physical.KeyCode(k-tcell.KeyF1), false
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return physical.KeyA + physical.KeyCode(k-tcell.KeyCtrlA), true
	}
	if k == tcell.KeyCtrlSpace {
		return physical.KeySpace, true
	}
	return physical.KeyNone, false
}
