package veil

// Table maps node IDs to their effective (ancestor-multiplied) opacity for
// the current frame. A node has an entry only if it is reachable from an
// opacity-bearing node; absence means the node is outside veil's concern,
// not that it is opaque or transparent. Callers must check for absence.
//
// The table is rebuilt from scratch by [Engine.Compose] every frame, so no
// stale entry survives a hierarchy change.
type Table struct {
	entries map[NodeID]float64
}

// Get returns the effective opacity for a node and whether the node has an
// entry this frame.
func (t *Table) Get(id NodeID) (float64, bool) {
	v, ok := t.entries[id]
	return v, ok
}

// Len returns the number of nodes with an entry this frame.
func (t *Table) Len() int {
	return len(t.entries)
}

// reset clears all entries, keeping the allocated map for reuse.
func (t *Table) reset() {
	if t.entries == nil {
		t.entries = make(map[NodeID]float64)
		return
	}
	clear(t.entries)
}
