package history

// DefaultMaxSize is the event capacity used when a configuration does not
// say otherwise.
const DefaultMaxSize = 1000

// History is a bounded event buffer. Once full, recording overwrites the
// oldest entry. A zero max disables recording entirely.
type History struct {
	max    int
	events []Event // ring storage once len reaches max
	head   int     // oldest entry when full, next overwrite slot
}

// New creates a history holding at most max events. A negative max is
// treated as zero.
func New(max int) *History {
	if max < 0 {
		max = 0
	}
	return &History{max: max}
}

// MaxSize returns the configured capacity.
func (h *History) MaxSize() int {
	return h.max
}

// Len returns the number of recorded events.
func (h *History) Len() int {
	return len(h.events)
}

// Append records an event and reports whether an old event was discarded
// to make room.
func (h *History) Append(e Event) bool {
	if h.max == 0 {
		return false
	}
	if len(h.events) < h.max {
		h.events = append(h.events, e)
		return false
	}
	h.events[h.head] = e
	h.head = (h.head + 1) % h.max
	return true
}

// at returns the event at chronological position i, 0 being the oldest.
func (h *History) at(i int) Event {
	if len(h.events) < h.max {
		return h.events[i]
	}
	return h.events[(h.head+i)%h.max]
}

// Recent returns up to n events, newest first. A non-positive n returns
// nothing.
func (h *History) Recent(n int) []Event {
	total := len(h.events)
	if n <= 0 || total == 0 {
		return nil
	}
	if n > total {
		n = total
	}

	out := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, h.at(total-1-i))
	}
	return out
}

// RecentOfType returns up to n events of one shape, newest first.
func (h *History) RecentOfType(t EventType, n int) []Event {
	total := len(h.events)
	if n <= 0 || total == 0 {
		return nil
	}

	out := make([]Event, 0, n)
	for i := total - 1; i >= 0 && len(out) < n; i-- {
		if e := h.at(i); e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// All returns every recorded event, oldest first.
func (h *History) All() []Event {
	total := len(h.events)
	out := make([]Event, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, h.at(i))
	}
	return out
}

// Clear discards all recorded events, keeping capacity.
func (h *History) Clear() {
	h.events = h.events[:0]
	h.head = 0
}
