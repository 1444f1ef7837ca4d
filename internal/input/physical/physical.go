package physical

import (
	"fmt"
	"strings"
)

// Device identifies the class of a physical input.
type Device uint8

const (
	// DeviceNone represents no device; the zero Input is invalid.
	DeviceNone Device = iota
	// DeviceKey is a keyboard key.
	DeviceKey
	// DeviceMouseButton is a mouse button.
	DeviceMouseButton
	// DeviceMouseAxis is a relative mouse motion or scroll axis.
	DeviceMouseAxis
	// DevicePadButton is a gamepad button.
	DevicePadButton
	// DevicePadAxis is a gamepad stick or trigger axis.
	DevicePadAxis
)

// String returns the device prefix used in the text form of an Input.
func (d Device) String() string {
	switch d {
	case DeviceNone:
		return "none"
	case DeviceKey:
		return "key"
	case DeviceMouseButton:
		return "mouse"
	case DeviceMouseAxis:
		return "mouse-axis"
	case DevicePadButton:
		return "pad"
	case DevicePadAxis:
		return "pad-axis"
	default:
		return fmt.Sprintf("Device(%d)", d)
	}
}

// IsAxis returns true for devices that carry graded float values rather
// than booleans.
func (d Device) IsAxis() bool {
	return d == DeviceMouseAxis || d == DevicePadAxis
}

// Input identifies one concrete physical signal source: a specific key,
// button, or axis. It is a comparable value type; equality is device tag
// plus code.
type Input struct {
	Device Device
	Code   uint16
}

// IsValid reports whether the input names a real device signal.
func (in Input) IsValid() bool {
	return in.Device != DeviceNone
}

// IsAxis reports whether the input is an analog axis.
func (in Input) IsAxis() bool {
	return in.Device.IsAxis()
}

// String returns the stable text form, e.g. "key:w" or "pad-axis:left-x".
func (in Input) String() string {
	if in.Device == DeviceNone {
		return "none"
	}
	return in.Device.String() + ":" + in.codeName()
}

// codeName returns the lowercase code name for the input's device class.
func (in Input) codeName() string {
	switch in.Device {
	case DeviceKey:
		return strings.ToLower(KeyCode(in.Code).String())
	case DeviceMouseButton:
		return strings.ToLower(MouseButton(in.Code).String())
	case DeviceMouseAxis:
		return strings.ToLower(MouseAxis(in.Code).String())
	case DevicePadButton:
		return strings.ToLower(PadButton(in.Code).String())
	case DevicePadAxis:
		return strings.ToLower(PadAxis(in.Code).String())
	default:
		return fmt.Sprintf("code(%d)", in.Code)
	}
}

// ParseInput parses the text form of an Input ("device:code"). Parsing is
// case-insensitive. Unknown devices or codes return a descriptive error.
func ParseInput(s string) (Input, error) {
	dev, code, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Input{}, fmt.Errorf("input %q: missing device prefix", s)
	}

	dev = strings.ToLower(strings.TrimSpace(dev))
	code = strings.TrimSpace(code)

	switch dev {
	case "key":
		k := KeyFromName(code)
		if k == KeyNone {
			return Input{}, fmt.Errorf("input %q: unknown key %q", s, code)
		}
		return k.Input(), nil
	case "mouse":
		b := MouseButtonFromName(code)
		if b == MouseNone {
			return Input{}, fmt.Errorf("input %q: unknown mouse button %q", s, code)
		}
		return b.Input(), nil
	case "mouse-axis":
		a := MouseAxisFromName(code)
		if a == MouseAxisNone {
			return Input{}, fmt.Errorf("input %q: unknown mouse axis %q", s, code)
		}
		return a.Input(), nil
	case "pad":
		b := PadButtonFromName(code)
		if b == PadNone {
			return Input{}, fmt.Errorf("input %q: unknown pad button %q", s, code)
		}
		return b.Input(), nil
	case "pad-axis":
		a := PadAxisFromName(code)
		if a == PadAxisNone {
			return Input{}, fmt.Errorf("input %q: unknown pad axis %q", s, code)
		}
		return a.Input(), nil
	default:
		return Input{}, fmt.Errorf("input %q: unknown device %q", s, dev)
	}
}

// MustParseInput is ParseInput but panics on error. Intended for static
// action tables where the text is a compile-time constant.
func MustParseInput(s string) Input {
	in, err := ParseInput(s)
	if err != nil {
		panic(err)
	}
	return in
}
