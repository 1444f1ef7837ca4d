package physical

import (
	"fmt"
	"strings"
)

// KeyCode identifies a keyboard key. Unlike text-oriented systems there is
// no generic "rune" key: game bindings address concrete letter and digit
// keys directly.
type KeyCode uint16

const (
	// KeyNone represents no key.
	KeyNone KeyCode = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits (top row)
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifiers, tracked as keys in their own right so bindings like
	// Modified{LeftShift, W} can observe them directly.
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeySuper
)

// Input returns the tagged Input identity for the key.
func (k KeyCode) Input() Input {
	return Input{Device: DeviceKey, Code: uint16(k)}
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyC:
		return "C"
	case KeyD:
		return "D"
	case KeyE:
		return "E"
	case KeyF:
		return "F"
	case KeyG:
		return "G"
	case KeyH:
		return "H"
	case KeyI:
		return "I"
	case KeyJ:
		return "J"
	case KeyK:
		return "K"
	case KeyL:
		return "L"
	case KeyM:
		return "M"
	case KeyN:
		return "N"
	case KeyO:
		return "O"
	case KeyP:
		return "P"
	case KeyQ:
		return "Q"
	case KeyR:
		return "R"
	case KeyS:
		return "S"
	case KeyT:
		return "T"
	case KeyU:
		return "U"
	case KeyV:
		return "V"
	case KeyW:
		return "W"
	case KeyX:
		return "X"
	case KeyY:
		return "Y"
	case KeyZ:
		return "Z"
	case Key0:
		return "0"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case Key4:
		return "4"
	case Key5:
		return "5"
	case Key6:
		return "6"
	case Key7:
		return "7"
	case Key8:
		return "8"
	case Key9:
		return "9"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyF3:
		return "F3"
	case KeyF4:
		return "F4"
	case KeyF5:
		return "F5"
	case KeyF6:
		return "F6"
	case KeyF7:
		return "F7"
	case KeyF8:
		return "F8"
	case KeyF9:
		return "F9"
	case KeyF10:
		return "F10"
	case KeyF11:
		return "F11"
	case KeyF12:
		return "F12"
	case KeyLeftShift:
		return "LeftShift"
	case KeyRightShift:
		return "RightShift"
	case KeyLeftCtrl:
		return "LeftCtrl"
	case KeyRightCtrl:
		return "RightCtrl"
	case KeyLeftAlt:
		return "LeftAlt"
	case KeyRightAlt:
		return "RightAlt"
	case KeySuper:
		return "Super"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsLetter returns true for the letter keys A-Z.
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the top-row digit keys 0-9.
func (k KeyCode) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey returns true for F1-F12.
func (k KeyCode) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true for the arrow keys.
func (k KeyCode) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsModifier returns true for shift/ctrl/alt/super keys.
func (k KeyCode) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeySuper
}

// keyNameMap maps key names (lowercase) to KeyCode values.
var keyNameMap = map[string]KeyCode{
	"none":       KeyNone,
	"a":          KeyA,
	"b":          KeyB,
	"c":          KeyC,
	"d":          KeyD,
	"e":          KeyE,
	"f":          KeyF,
	"g":          KeyG,
	"h":          KeyH,
	"i":          KeyI,
	"j":          KeyJ,
	"k":          KeyK,
	"l":          KeyL,
	"m":          KeyM,
	"n":          KeyN,
	"o":          KeyO,
	"p":          KeyP,
	"q":          KeyQ,
	"r":          KeyR,
	"s":          KeyS,
	"t":          KeyT,
	"u":          KeyU,
	"v":          KeyV,
	"w":          KeyW,
	"x":          KeyX,
	"y":          KeyY,
	"z":          KeyZ,
	"0":          Key0,
	"1":          Key1,
	"2":          Key2,
	"3":          Key3,
	"4":          Key4,
	"5":          Key5,
	"6":          Key6,
	"7":          Key7,
	"8":          Key8,
	"9":          Key9,
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"insert":     KeyInsert,
	"ins":        KeyInsert,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pgup":       KeyPageUp,
	"pagedown":   KeyPageDown,
	"pgdn":       KeyPageDown,
	"space":      KeySpace,
	"up":         KeyUp,
	"down":       KeyDown,
	"left":       KeyLeft,
	"right":      KeyRight,
	"f1":         KeyF1,
	"f2":         KeyF2,
	"f3":         KeyF3,
	"f4":         KeyF4,
	"f5":         KeyF5,
	"f6":         KeyF6,
	"f7":         KeyF7,
	"f8":         KeyF8,
	"f9":         KeyF9,
	"f10":        KeyF10,
	"f11":        KeyF11,
	"f12":        KeyF12,
	"leftshift":  KeyLeftShift,
	"lshift":     KeyLeftShift,
	"shift":      KeyLeftShift,
	"rightshift": KeyRightShift,
	"rshift":     KeyRightShift,
	"leftctrl":   KeyLeftCtrl,
	"lctrl":      KeyLeftCtrl,
	"ctrl":       KeyLeftCtrl,
	"rightctrl":  KeyRightCtrl,
	"rctrl":      KeyRightCtrl,
	"leftalt":    KeyLeftAlt,
	"lalt":       KeyLeftAlt,
	"alt":        KeyLeftAlt,
	"rightalt":   KeyRightAlt,
	"ralt":       KeyRightAlt,
	"super":      KeySuper,
	"meta":       KeySuper,
}

// KeyFromName returns the KeyCode for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) KeyCode {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
