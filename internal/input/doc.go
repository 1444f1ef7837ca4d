// Package input resolves physical device state into named game actions.
//
// # Overview
//
// The Manager owns the raw input store, the action registry, the context
// stack, and the per-action state machines. Each frame the owner pushes
// device state in through SetInputState/SetInputValue (usually via the
// device adapters' Publish), then calls Update once with the frame delta.
// After Update, queries answer in terms of actions, never devices:
//
//	m := input.New(input.DefaultConfig())
//	m.RegisterActions(action.DefaultActions()...)
//
//	// each frame
//	m.SetInputState(physical.KeySpace.Input(), true)
//	m.Update(dt)
//	if m.IsActionPressed("jump") {
//	    player.Jump()
//	}
//
// # State machine
//
// Every action runs a four-state machine: Idle, Pressed (first active
// frame), Held (still active), Released. Any inactive frame moves the
// action to Released, which persists until the next activation; callers
// watching for the release edge should sample the frame after activity
// stops.
//
// # Contexts
//
// Contexts gate which actions are observable without touching state
// machines. Pushing a "menu" context that disables gameplay actions
// freezes their queries at false/0.0; popping it restores whatever the
// machines computed meanwhile.
//
// The Manager is owned by one goroutine, the frame loop. Registration
// and table reload are safe from other goroutines because the registry
// locks internally; everything else is frame-loop-only.
package input
