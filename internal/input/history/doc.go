// Package history records what the input layer resolved, frame by frame,
// in a bounded buffer.
//
// Three event shapes are recorded: ActionTriggered for every frame an
// enabled action is asserted, ContextChanged for context stack pushes and
// pops, and InputCombo when several actions fire together. Each event
// carries a unique id and a timestamp in its Meta.
//
// The buffer holds the newest MaxSize events and silently discards the
// oldest beyond that. It is owned by the frame loop and is not safe for
// concurrent use; readers outside the loop must snapshot through the
// manager.
package history
