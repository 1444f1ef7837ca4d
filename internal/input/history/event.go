package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies an event shape.
type EventType uint8

const (
	// TypeActionTriggered marks a frame in which an enabled action was
	// asserted.
	TypeActionTriggered EventType = iota

	// TypeContextChanged marks a context stack transition.
	TypeContextChanged

	// TypeInputCombo marks several actions asserting together.
	TypeInputCombo
)

// String returns the dotted event name.
func (t EventType) String() string {
	switch t {
	case TypeActionTriggered:
		return "action.triggered"
	case TypeContextChanged:
		return "context.changed"
	case TypeInputCombo:
		return "input.combo"
	default:
		return fmt.Sprintf("EventType(%d)", t)
	}
}

// Meta carries the identity every recorded event shares.
type Meta struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Time is when the event was recorded.
	Time time.Time
}

// EventMeta returns the event identity, satisfying Event for any shape
// that embeds Meta.
func (m Meta) EventMeta() Meta {
	return m
}

func newMeta() Meta {
	return Meta{
		ID:   uuid.NewString(),
		Time: time.Now(),
	}
}

// Event is one recorded entry. The set of shapes is closed:
// ActionTriggered, ContextChanged, and InputCombo.
type Event interface {
	Type() EventType
	EventMeta() Meta
	isEvent()
}

// ActionTriggered records one frame of an asserted, enabled action.
// Digital assertions carry intensity 1.0; analog assertions carry the
// resolved axis value.
type ActionTriggered struct {
	Meta
	ActionID  string
	Intensity float64
}

// NewActionTriggered stamps a triggered-action event.
func NewActionTriggered(actionID string, intensity float64) ActionTriggered {
	return ActionTriggered{
		Meta:      newMeta(),
		ActionID:  actionID,
		Intensity: intensity,
	}
}

// Type returns TypeActionTriggered.
func (ActionTriggered) Type() EventType { return TypeActionTriggered }

func (ActionTriggered) isEvent() {}

// ContextChanged records a context stack transition: the top context
// name before and after the change. Empty means the stack was or became
// empty.
type ContextChanged struct {
	Meta
	Old string
	New string
}

// NewContextChanged stamps a context transition event.
func NewContextChanged(oldTop, newTop string) ContextChanged {
	return ContextChanged{
		Meta: newMeta(),
		Old:  oldTop,
		New:  newTop,
	}
}

// Type returns TypeContextChanged.
func (ContextChanged) Type() EventType { return TypeContextChanged }

func (ContextChanged) isEvent() {}

// InputCombo records several actions entering the pressed state in the
// same update. Duration is the span of the detecting frame.
type InputCombo struct {
	Meta
	Actions  []string
	Duration time.Duration
}

// NewInputCombo stamps a combo event.
func NewInputCombo(actions []string, duration time.Duration) InputCombo {
	return InputCombo{
		Meta:     newMeta(),
		Actions:  actions,
		Duration: duration,
	}
}

// Type returns TypeInputCombo.
func (InputCombo) Type() EventType { return TypeInputCombo }

func (InputCombo) isEvent() {}
