// Package physical defines the closed set of device-level input identifiers
// the engine understands.
//
// This package provides the fundamental identity types for raw input:
//
//   - KeyCode: Identifies a keyboard key
//   - MouseButton / MouseAxis: Mouse buttons and relative motion/scroll axes
//   - PadButton / PadAxis: Gamepad buttons and stick/trigger axes
//   - Input: A tagged device+code pair usable as a map key
//
// # Input Identity
//
// Input is a small comparable value. Two Inputs are equal when both the
// device tag and the code match, which makes Input suitable as the key of
// the manager's raw-state maps:
//
//	w := physical.KeyW.Input()
//	south := physical.PadSouth.Input()
//
// # Text Form
//
// Every Input has a stable text form used by action-table files, written as
// a device prefix and a code name:
//
//	"key:w"  "key:escape"  "mouse:left"  "mouse-axis:scroll-y"
//	"pad:south"  "pad-axis:left-x"
//
// ParseInput parses the text form back into an Input. Parsing is
// case-insensitive and round-trips with Input.String for every defined code.
package physical
