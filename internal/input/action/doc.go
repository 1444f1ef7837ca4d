// Package action provides action definitions and the action registry for
// the input system.
//
// An Action names a semantic game input ("move.forward", "combat.fire")
// and carries the bindings that map physical inputs onto it. The Registry
// is the authoritative set of registered actions; registering an id that
// already exists silently replaces the previous definition (last write
// wins).
//
// # Bindings
//
// A binding describes when physical input state asserts an action:
//
//   - Single: one input held
//   - Modified: a modifier input plus a key input, both held
//   - Combo: every listed input held at once
//   - Analog: a graded axis with a deadzone and a saturation threshold
//
// Bindings are immutable values attached to an action at registration. An
// action with several bindings is asserted when ANY of them is (OR across
// bindings), which is how keyboard and gamepad bindings coexist on one
// action.
//
// # Tables
//
// Action tables can be built in code (see DefaultActions), loaded from
// JSON files, or produced by a Lua script. Binding overrides persist to a
// JSON overrides file so user rebinds survive restarts.
//
// # Usage
//
//	reg := action.NewRegistry()
//	reg.Register(action.New("player.jump").
//		WithDisplayName("Jump").
//		WithCategory("movement").
//		WithBindings(
//			action.SingleOf(physical.KeySpace.Input()),
//			action.SingleOf(physical.PadSouth.Input()),
//		))
//
//	jump, ok := reg.Get("player.jump")
package action
