// Package dedupe tracks chromosome names already seen by a Metadata
// Recorder so a repeated (interleaved) chromosome is caught before it
// corrupts the archive's first-occurrence ordering invariant.
package dedupe

// Tracker records chromosome names in first-occurrence order and
// answers whether a name has already been seen.
//
// Adapted from the teacher's hash-collision Tracker: starch has no
// hash to collide on (a chromosome's name is its own dedupe key), so
// this drops the hash-keyed map and collision flag in favor of a plain
// seen-set plus an ordered list.
type Tracker struct {
	seen    map[string]struct{}
	ordered []string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Contains reports whether name has already been tracked.
func (t *Tracker) Contains(name string) bool {
	_, ok := t.seen[name]

	return ok
}

// Track records name. The caller must check Contains first; Track does
// not itself reject a duplicate, since the duplicate-chromosome error
// message (spec §4.4) needs context only the caller has.
func (t *Tracker) Track(name string) {
	if t.Contains(name) {
		return
	}
	t.seen[name] = struct{}{}
	t.ordered = append(t.ordered, name)
}

// Ordered returns chromosome names in first-occurrence order.
func (t *Tracker) Ordered() []string {
	return t.ordered
}

// Count returns the number of distinct chromosomes tracked.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears all tracked names, preserving the map's capacity.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
	t.ordered = t.ordered[:0]
}
