// Package device turns raw device events into per-frame input state.
//
// Backends translate their native events into the closed Event union and
// feed them to the adapters: Keyboard, Mouse, and Gamepads. Each frame the
// owner drains pending events into the adapters, calls Update with the
// frame delta, and then calls Publish to push the accumulated state into a
// Sink (normally the input manager's raw state store).
//
//	kb.HandleEvent(ev)   // for each pending event
//	kb.Update(dt)
//	kb.Publish(sink)
//
// Adapters also answer device-local queries the action layer does not
// cover: just-pressed edges, key repeat, captured text, click streaks,
// and pad connection state. They are owned by the frame loop and are not
// safe for concurrent use.
package device
