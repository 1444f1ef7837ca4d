package action

import (
	"fmt"
	"strings"
)

// InputKind classifies how an action's value is derived.
type InputKind uint8

const (
	// KindDigital actions are on/off; value is 1.0 while pressed or held.
	KindDigital InputKind = iota
	// KindAnalog actions take their graded value from analog bindings.
	KindAnalog
	// KindHybrid actions report 1.0 while pressed or held and otherwise
	// fall back to the analog rule.
	KindHybrid
)

// String returns the table-file name of the kind.
func (k InputKind) String() string {
	switch k {
	case KindDigital:
		return "digital"
	case KindAnalog:
		return "analog"
	case KindHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("InputKind(%d)", k)
	}
}

// KindFromName returns the InputKind for a given name (case-insensitive).
// Unrecognized names return KindDigital and false.
func KindFromName(name string) (InputKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "digital", "":
		return KindDigital, true
	case "analog":
		return KindAnalog, true
	case "hybrid":
		return KindHybrid, true
	default:
		return KindDigital, false
	}
}

// Metadata carries descriptive and behavioral extras for an action.
type Metadata struct {
	// Description documents the action for rebind screens and tooling.
	Description string

	// Tags group actions across categories ("core", "vehicle", ...).
	Tags []string

	// Priority orders actions for display and conflict reporting.
	// Higher sorts first. Default is 0.
	Priority int

	// ContextRequired names a context that must be on the stack for the
	// action to be enabled. Empty means no requirement.
	ContextRequired string
}

// Action is a named semantic input mapped from one or more physical
// bindings. Actions are immutable after registration except by whole
// replacement under the same ID.
type Action struct {
	// ID uniquely identifies the action ("move.forward").
	ID string

	// DisplayName is the human-readable name ("Move Forward").
	DisplayName string

	// Category groups actions for display ("movement", "combat").
	Category string

	// Kind selects the digital/analog/hybrid value rule.
	Kind InputKind

	// Bindings are evaluated in order; the action is asserted when any
	// binding is active.
	Bindings []Binding

	// Meta carries description, tags, priority, and context requirement.
	Meta Metadata
}

// New creates an action with the given id. The display name defaults to
// the id until overridden.
func New(id string) Action {
	return Action{
		ID:          id,
		DisplayName: id,
	}
}

// WithDisplayName sets the human-readable name.
func (a Action) WithDisplayName(name string) Action {
	a.DisplayName = name
	return a
}

// WithCategory sets the display category.
func (a Action) WithCategory(category string) Action {
	a.Category = category
	return a
}

// WithKind sets the value rule.
func (a Action) WithKind(kind InputKind) Action {
	a.Kind = kind
	return a
}

// WithBindings replaces the action's bindings.
func (a Action) WithBindings(bindings ...Binding) Action {
	a.Bindings = bindings
	return a
}

// WithDescription sets the metadata description.
func (a Action) WithDescription(desc string) Action {
	a.Meta.Description = desc
	return a
}

// WithTags replaces the metadata tags.
func (a Action) WithTags(tags ...string) Action {
	a.Meta.Tags = tags
	return a
}

// WithPriority sets the metadata priority.
func (a Action) WithPriority(priority int) Action {
	a.Meta.Priority = priority
	return a
}

// WithContext sets the required context name.
func (a Action) WithContext(name string) Action {
	a.Meta.ContextRequired = name
	return a
}

// HasTag reports whether the action carries the given tag.
func (a Action) HasTag(tag string) bool {
	for _, t := range a.Meta.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// String returns a short identifying form for logs and errors.
func (a Action) String() string {
	if a.Category != "" {
		return a.Category + "/" + a.ID
	}
	return a.ID
}
