package action

import (
	"testing"

	"github.com/dshills/inputstorm/internal/input/physical"
)

func TestNewDefaults(t *testing.T) {
	a := New("move.forward")

	if a.ID != "move.forward" {
		t.Errorf("ID = %q, want %q", a.ID, "move.forward")
	}
	if a.DisplayName != "move.forward" {
		t.Errorf("DisplayName = %q, want id fallback %q", a.DisplayName, "move.forward")
	}
	if a.Kind != KindDigital {
		t.Errorf("Kind = %v, want KindDigital", a.Kind)
	}
	if len(a.Bindings) != 0 {
		t.Errorf("Bindings = %d entries, want none", len(a.Bindings))
	}
}

func TestBuildersDoNotMutateReceiver(t *testing.T) {
	base := New("jump")
	modified := base.
		WithDisplayName("Jump").
		WithCategory("combat").
		WithKind(KindHybrid).
		WithDescription("Leap").
		WithTags("core", "combat").
		WithPriority(20).
		WithContext("gameplay").
		WithBindings(SingleOf(physical.KeySpace.Input()))

	if base.DisplayName != "jump" || base.Category != "" || base.Kind != KindDigital {
		t.Errorf("base mutated: %+v", base)
	}
	if len(base.Bindings) != 0 || base.Meta.Priority != 0 || base.Meta.ContextRequired != "" {
		t.Errorf("base mutated: %+v", base)
	}

	if modified.DisplayName != "Jump" {
		t.Errorf("DisplayName = %q, want %q", modified.DisplayName, "Jump")
	}
	if modified.Category != "combat" {
		t.Errorf("Category = %q, want %q", modified.Category, "combat")
	}
	if modified.Kind != KindHybrid {
		t.Errorf("Kind = %v, want KindHybrid", modified.Kind)
	}
	if modified.Meta.Description != "Leap" {
		t.Errorf("Description = %q, want %q", modified.Meta.Description, "Leap")
	}
	if modified.Meta.Priority != 20 {
		t.Errorf("Priority = %d, want 20", modified.Meta.Priority)
	}
	if modified.Meta.ContextRequired != "gameplay" {
		t.Errorf("ContextRequired = %q, want %q", modified.Meta.ContextRequired, "gameplay")
	}
	if len(modified.Bindings) != 1 {
		t.Errorf("Bindings = %d entries, want 1", len(modified.Bindings))
	}
}

func TestHasTag(t *testing.T) {
	a := New("fire").WithTags("combat", "core")

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "present first", tag: "combat", want: true},
		{name: "present second", tag: "core", want: true},
		{name: "absent", tag: "vehicle", want: false},
		{name: "case sensitive", tag: "Combat", want: false},
		{name: "empty", tag: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.HasTag(tt.tag); got != tt.want {
				t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{name: "with category", action: New("jump").WithCategory("combat"), want: "combat/jump"},
		{name: "no category", action: New("jump"), want: "jump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputKindString(t *testing.T) {
	tests := []struct {
		kind InputKind
		want string
	}{
		{KindDigital, "digital"},
		{KindAnalog, "analog"},
		{KindHybrid, "hybrid"},
		{InputKind(99), "InputKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("InputKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindFromName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   InputKind
		wantOK bool
	}{
		{name: "digital", input: "digital", want: KindDigital, wantOK: true},
		{name: "analog", input: "analog", want: KindAnalog, wantOK: true},
		{name: "hybrid", input: "hybrid", want: KindHybrid, wantOK: true},
		{name: "empty defaults digital", input: "", want: KindDigital, wantOK: true},
		{name: "mixed case", input: "Analog", want: KindAnalog, wantOK: true},
		{name: "whitespace", input: "  hybrid  ", want: KindHybrid, wantOK: true},
		{name: "unknown", input: "axis", want: KindDigital, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KindFromName(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("KindFromName(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
