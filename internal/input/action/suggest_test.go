package action

import (
	"reflect"
	"strings"
	"testing"
)

func TestSuggest(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(
		New("jump"),
		New("fire"),
		New("aim"),
		New("move.forward"),
	)

	tests := []struct {
		name    string
		id      string
		maxDist int
		want    []string
	}{
		{name: "transposition", id: "jmup", maxDist: 2, want: []string{"jump"}},
		{name: "one letter off", id: "fird", maxDist: 2, want: []string{"fire"}},
		{name: "case insensitive", id: "JUMP", maxDist: 2, want: []string{"jump"}},
		{name: "exact match first", id: "aim", maxDist: 2, want: []string{"aim"}},
		{name: "nothing close", id: "teleport", maxDist: 2, want: []string{}},
		{name: "zero uses default cutoff", id: "jum", maxDist: 0, want: []string{"jump", "aim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Suggest(tt.id, tt.maxDist)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q, %d) = %v, want %v", tt.id, tt.maxDist, got, tt.want)
			}
		})
	}
}

func TestSuggestOrdersByDistanceThenName(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(New("car"), New("bat"), New("cab"))

	// "cat" is distance 1 from all three; ties break alphabetically.
	got := r.Suggest("cat", 1)
	want := []string{"bat", "cab", "car"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(cat, 1) = %v, want %v", got, want)
	}
}

func TestSuggestHint(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(New("jump"), New("fire"))

	hint := suggestHint(r, "jmup")
	if !strings.Contains(hint, "did you mean") || !strings.Contains(hint, "jump") {
		t.Errorf("suggestHint(jmup) = %q, want did-you-mean with jump", hint)
	}

	if hint := suggestHint(r, "completely.unrelated"); hint != "" {
		t.Errorf("suggestHint(unrelated) = %q, want empty", hint)
	}

	if hint := suggestHint(nil, "jump"); hint != "" {
		t.Errorf("suggestHint(nil registry) = %q, want empty", hint)
	}
}

func TestSuggestHintCapsAtThree(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(New("bat"), New("cab"), New("car"), New("can"))

	hint := suggestHint(r, "cat")
	if got := strings.Count(hint, ","); got != 2 {
		t.Errorf("suggestHint listed %d separators, want 2 (three ids): %q", got, hint)
	}
}
