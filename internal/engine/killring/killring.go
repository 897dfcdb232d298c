// Package killring keeps a bounded, most-recent-first history of killed
// text for later yanking.
package killring

// DefaultMax is the capacity used when New is given a non-positive size.
const DefaultMax = 60

// Ring is a bounded list of killed fragments. Index 0 is the most recent.
type Ring struct {
	entries []string
	max     int
	index   int
}

// New creates an empty ring holding at most max entries.
func New(max int) *Ring {
	if max <= 0 {
		max = DefaultMax
	}
	return &Ring{max: max}
}

// Push records text as the most recent kill, evicting the oldest entry
// when the ring is full. The read index is reset to the newest entry.
func (r *Ring) Push(text string) {
	r.entries = append([]string{text}, r.entries...)
	if len(r.entries) > r.max {
		r.entries = r.entries[:r.max]
	}
	r.index = 0
}

// Yank returns the entry at the read index. The second result is false
// when nothing has been killed yet. Yank does not rotate the ring.
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	return r.entries[r.index], true
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Max returns the capacity.
func (r *Ring) Max() int {
	return r.max
}

// SetMax changes the capacity, dropping the oldest entries if needed.
func (r *Ring) SetMax(max int) {
	if max <= 0 {
		max = DefaultMax
	}
	r.max = max
	if len(r.entries) > max {
		r.entries = r.entries[:max]
	}
	if r.index >= len(r.entries) {
		r.index = 0
	}
}

// Entries returns a copy of the stored fragments, most recent first.
func (r *Ring) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
