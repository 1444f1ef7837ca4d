package action

import "github.com/dshills/inputstorm/internal/input/physical"

// DefaultActions returns the built-in table: a conventional keyboard,
// mouse, and gamepad layout for a character-controlled game. Games
// replace or extend it through table files and overrides.
//
// Gameplay actions carry no required context so they work on an empty
// context stack; ui.* actions require a "menu" context.
func DefaultActions() []Action {
	return []Action{
		// Movement (digital)
		New("move.forward").
			WithDisplayName("Move Forward").
			WithCategory("movement").
			WithPriority(10).
			WithTags("core").
			WithBindings(
				SingleOf(physical.KeyW.Input()),
				SingleOf(physical.PadDPadUp.Input()),
			),
		New("move.back").
			WithDisplayName("Move Back").
			WithCategory("movement").
			WithPriority(10).
			WithTags("core").
			WithBindings(
				SingleOf(physical.KeyS.Input()),
				SingleOf(physical.PadDPadDown.Input()),
			),
		New("move.left").
			WithDisplayName("Move Left").
			WithCategory("movement").
			WithPriority(10).
			WithTags("core").
			WithBindings(
				SingleOf(physical.KeyA.Input()),
				SingleOf(physical.PadDPadLeft.Input()),
			),
		New("move.right").
			WithDisplayName("Move Right").
			WithCategory("movement").
			WithPriority(10).
			WithTags("core").
			WithBindings(
				SingleOf(physical.KeyD.Input()),
				SingleOf(physical.PadDPadRight.Input()),
			),

		// Movement (stick axes). Axis sign passes through the value,
		// negative is up and left on most pads.
		New("move.x").
			WithDisplayName("Move Axis X").
			WithCategory("movement").
			WithKind(KindAnalog).
			WithPriority(10).
			WithTags("core").
			WithBindings(AnalogOf(physical.PadLeftX.Input(), 0.5, 0.1)),
		New("move.y").
			WithDisplayName("Move Axis Y").
			WithCategory("movement").
			WithKind(KindAnalog).
			WithPriority(10).
			WithTags("core").
			WithBindings(AnalogOf(physical.PadLeftY.Input(), 0.5, 0.1)),

		// Look. Threshold 1.0 keeps the whole range in the passthrough
		// zone so camera values preserve magnitude instead of snapping.
		New("look.x").
			WithDisplayName("Look X").
			WithCategory("camera").
			WithKind(KindAnalog).
			WithDescription("Horizontal camera movement from mouse or right stick.").
			WithBindings(
				AnalogOf(physical.MouseX.Input(), 1.0, 0.0),
				AnalogOf(physical.PadRightX.Input(), 1.0, 0.1),
			),
		New("look.y").
			WithDisplayName("Look Y").
			WithCategory("camera").
			WithKind(KindAnalog).
			WithDescription("Vertical camera movement from mouse or right stick.").
			WithBindings(
				AnalogOf(physical.MouseY.Input(), 1.0, 0.0),
				AnalogOf(physical.PadRightY.Input(), 1.0, 0.1),
			),

		// Combat
		New("jump").
			WithDisplayName("Jump").
			WithCategory("combat").
			WithPriority(20).
			WithTags("combat").
			WithBindings(
				SingleOf(physical.KeySpace.Input()),
				SingleOf(physical.PadSouth.Input()),
			),
		New("fire").
			WithDisplayName("Fire").
			WithCategory("combat").
			WithKind(KindHybrid).
			WithPriority(20).
			WithTags("combat").
			WithDescription("Primary attack, pressure sensitive on triggers.").
			WithBindings(
				SingleOf(physical.MouseLeft.Input()),
				AnalogOf(physical.PadTriggerRight.Input(), 0.3, 0.05),
			),
		New("aim").
			WithDisplayName("Aim").
			WithCategory("combat").
			WithKind(KindHybrid).
			WithPriority(20).
			WithTags("combat").
			WithBindings(
				SingleOf(physical.MouseRight.Input()),
				AnalogOf(physical.PadTriggerLeft.Input(), 0.3, 0.05),
			),
		New("melee").
			WithDisplayName("Melee").
			WithCategory("combat").
			WithPriority(20).
			WithTags("combat").
			WithBindings(
				SingleOf(physical.KeyF.Input()),
				SingleOf(physical.PadNorth.Input()),
			),

		// Interaction
		New("interact").
			WithDisplayName("Interact").
			WithCategory("interaction").
			WithBindings(
				SingleOf(physical.KeyE.Input()),
				SingleOf(physical.PadWest.Input()),
			),
		New("sprint").
			WithDisplayName("Sprint").
			WithCategory("movement").
			WithPriority(10).
			WithTags("core").
			WithBindings(
				SingleOf(physical.KeyLeftShift.Input()),
				SingleOf(physical.PadLeftStick.Input()),
			),
		New("crouch").
			WithDisplayName("Crouch").
			WithCategory("movement").
			WithPriority(10).
			WithBindings(
				SingleOf(physical.KeyLeftCtrl.Input()),
				SingleOf(physical.PadEast.Input()),
			),

		// System
		New("game.quicksave").
			WithDisplayName("Quick Save").
			WithCategory("system").
			WithBindings(ModifiedOf(physical.KeyLeftCtrl.Input(), physical.KeyS.Input())),
		New("debug.console").
			WithDisplayName("Debug Console").
			WithCategory("system").
			WithTags("debug").
			WithBindings(ComboOf(
				physical.KeyLeftCtrl.Input(),
				physical.KeyLeftShift.Input(),
				physical.KeyD.Input(),
			)),
		New("menu.toggle").
			WithDisplayName("Toggle Menu").
			WithCategory("system").
			WithPriority(100).
			WithBindings(
				SingleOf(physical.KeyEscape.Input()),
				SingleOf(physical.PadStart.Input()),
			),

		// Menu navigation, enabled only while a "menu" context is active.
		New("ui.up").
			WithDisplayName("Menu Up").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyUp.Input()),
				SingleOf(physical.PadDPadUp.Input()),
			),
		New("ui.down").
			WithDisplayName("Menu Down").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyDown.Input()),
				SingleOf(physical.PadDPadDown.Input()),
			),
		New("ui.left").
			WithDisplayName("Menu Left").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyLeft.Input()),
				SingleOf(physical.PadDPadLeft.Input()),
			),
		New("ui.right").
			WithDisplayName("Menu Right").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyRight.Input()),
				SingleOf(physical.PadDPadRight.Input()),
			),
		New("ui.confirm").
			WithDisplayName("Confirm").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyEnter.Input()),
				SingleOf(physical.PadSouth.Input()),
			),
		New("ui.cancel").
			WithDisplayName("Cancel").
			WithCategory("ui").
			WithPriority(100).
			WithTags("ui").
			WithContext("menu").
			WithBindings(
				SingleOf(physical.KeyEscape.Input()),
				SingleOf(physical.PadEast.Input()),
			),
	}
}

// RegisterDefaults loads the built-in table into a registry.
func RegisterDefaults(r *Registry) {
	r.RegisterAll(DefaultActions()...)
}
