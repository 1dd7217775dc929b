package veil

// NodeID identifies a node in the host's scene hierarchy. Veil never
// interprets IDs; it only uses them as keys and hands them back to the host.
type NodeID uint32

// Hierarchy is the read-only view of the host scene graph consumed during
// composition. Children returns a node's direct children; it may return nil
// or an empty slice for leaves and for nodes the host no longer knows about.
// The returned slice is not retained past the call.
type Hierarchy interface {
	Children(id NodeID) []NodeID
}

// ChildMap is a trivial map-backed Hierarchy, handy for tests and for hosts
// without an existing child index.
type ChildMap map[NodeID][]NodeID

// Children returns the children recorded for id, or nil.
func (m ChildMap) Children(id NodeID) []NodeID {
	return m[id]
}

// Remover receives despawn requests when a fade-out completes. Requests are
// fire-and-forget: the host is the sole owner of node lifetime and may
// ignore or defer them (for example if the node is already gone).
type Remover interface {
	RequestRemoval(id NodeID)
}

// RemoverFunc adapts a function to the Remover interface.
type RemoverFunc func(id NodeID)

// RequestRemoval calls f(id).
func (f RemoverFunc) RequestRemoval(id NodeID) {
	f(id)
}

// stackEntry is one pending node in the compositor's work stack.
type stackEntry struct {
	id        NodeID
	effective float64
}

// Engine owns the opacity values, the per-frame effective opacity table,
// and the registered sinks. One Engine serves one host hierarchy.
//
// The per-frame phases must run in a fixed order:
//
//	Interpolate(dt)        // advance every opacity value
//	FlushRemovals(remover) // barrier: host applies despawns before reads
//	Compose(hierarchy)     // rebuild the effective opacity table
//	Apply()                // write effective opacities into every sink
//
// [Engine.Tick] runs all four in one call. Hosts with their own frame
// scheduling call the phases directly and may interleave unrelated work
// between them (transform propagation belongs before Compose, visibility
// culling after Apply). Engines are not safe for concurrent use; drive one
// from a single goroutine, the same way a scene is updated.
type Engine struct {
	opacities map[NodeID]*Opacity
	table     Table
	sinks     []sinkDriver
	removals  []NodeID
	stack     []stackEntry // reused compositor work stack
}

// NewEngine creates an empty engine with no opacities and no sinks.
func NewEngine() *Engine {
	return &Engine{
		opacities: make(map[NodeID]*Opacity),
	}
}

// Attach gives a node its own opacity value, making it an opacity root for
// its subtree. The stored value is returned so callers can keep driving
// animations on it. Attaching to an already-attached node replaces the
// previous value.
func (e *Engine) Attach(id NodeID, op Opacity) *Opacity {
	stored := op
	e.opacities[id] = &stored
	return &stored
}

// Detach removes a node's opacity value. Called by the host when the node
// is destroyed. No-op for nodes without one.
func (e *Engine) Detach(id NodeID) {
	delete(e.opacities, id)
}

// Opacity returns the opacity value attached to a node, if any.
func (e *Engine) Opacity(id NodeID) (*Opacity, bool) {
	op, ok := e.opacities[id]
	return op, ok
}

// Table returns the effective opacity table built by the most recent
// Compose. It is owned by the engine: read it between Compose and the next
// Interpolate, and never mutate or retain it across frames.
func (e *Engine) Table() *Table {
	return &e.table
}

// Interpolate advances every attached opacity value by dt seconds of frame
// time. Completed fade-outs queue a removal request for FlushRemovals;
// stable values are skipped, so each fade-out queues exactly one request.
func (e *Engine) Interpolate(dt float64) {
	for id, op := range e.opacities {
		if op.advance(dt) {
			e.removals = append(e.removals, id)
		}
	}
}

// FlushRemovals delivers queued despawn requests to the host and clears the
// queue. This is the synchronization barrier between Interpolate and
// Compose: a host that removes nodes here guarantees the compositor never
// walks a subtree it just deleted. A nil remover discards the requests.
func (e *Engine) FlushRemovals(r Remover) {
	for _, id := range e.removals {
		if r != nil {
			r.RequestRemoval(id)
		}
	}
	e.removals = e.removals[:0]
}

// Compose rebuilds the effective opacity table for the current frame.
//
// Every node carrying an opacity value seeds an iterative depth-first walk
// of its subtree; each visited node records the product of its own value
// (1.0 if it has none) and its ancestors' values. Nodes reachable from two
// opacity roots keep the first value written; nodes reachable from none
// never enter the table. The walk is an explicit work stack rather than
// recursion so arbitrarily deep hierarchies cannot exhaust the goroutine
// stack.
func (e *Engine) Compose(h Hierarchy) {
	e.table.reset()
	stack := e.stack[:0]
	for id, op := range e.opacities {
		if _, done := e.table.entries[id]; done {
			continue
		}
		stack = append(stack, stackEntry{id, op.current})
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, done := e.table.entries[top.id]; done {
				continue
			}
			e.table.entries[top.id] = top.effective
			if h == nil {
				continue
			}
			for _, child := range h.Children(top.id) {
				own := 1.0
				if childOp, ok := e.opacities[child]; ok {
					own = childOp.current
				}
				stack = append(stack, stackEntry{child, top.effective * own})
			}
		}
	}
	e.stack = stack[:0]
}

// Tick runs one full frame in the required order: Interpolate, the removal
// barrier, Compose, Apply.
func (e *Engine) Tick(dt float64, h Hierarchy, r Remover) {
	e.Interpolate(dt)
	e.FlushRemovals(r)
	e.Compose(h)
	e.Apply()
}
