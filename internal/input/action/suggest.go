package action

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultSuggestDistance is the edit-distance cutoff for did-you-mean
// suggestions. Two covers the common transposition and one-letter typos
// without dragging in unrelated ids.
const DefaultSuggestDistance = 2

// Suggest returns registered ids within maxDist edits of the given id,
// closest first, ties broken alphabetically. Matching is case-insensitive.
// A maxDist <= 0 uses DefaultSuggestDistance.
func (r *Registry) Suggest(id string, maxDist int) []string {
	if maxDist <= 0 {
		maxDist = DefaultSuggestDistance
	}
	target := strings.ToLower(id)

	type scored struct {
		id   string
		dist int
	}

	r.mu.RLock()
	candidates := make([]scored, 0, 4)
	for _, existing := range r.order {
		d := levenshtein.ComputeDistance(target, strings.ToLower(existing))
		if d <= maxDist {
			candidates = append(candidates, scored{id: existing, dist: d})
		}
	}
	r.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}
	return out
}

// suggestHint formats a did-you-mean fragment for loader errors, or an
// empty string when nothing is close enough.
func suggestHint(r *Registry, id string) string {
	if r == nil {
		return ""
	}
	matches := r.Suggest(id, DefaultSuggestDistance)
	if len(matches) == 0 {
		return ""
	}
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return " (did you mean " + strings.Join(matches, ", ") + "?)"
}
