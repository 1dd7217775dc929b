package veil

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Fader is an attribute that can receive an effective opacity directly,
// with no external context. Implement it on any type to make it usable with
// [RegisterFader].
type Fader interface {
	ApplyOpacity(opacity float64)
}

// ApplyFunc writes an effective opacity into one attribute instance using a
// shared context (for example a [MaterialStore]). It returns nothing and
// must not fail: a missing context resource is a silent no-op, since it can
// legitimately race with asset unload.
type ApplyFunc[A, Cx any] func(attr *A, cx Cx, opacity float64)

// Attrs stores the per-node instances of one registered attribute type.
// The host attaches and detaches instances as nodes gain and lose the
// attribute; the engine only iterates them during Apply.
type Attrs[A any] struct {
	instances map[NodeID]*A
}

// Attach associates an attribute instance with a node. The engine keeps
// the pointer, so mutations through it are seen by the next Apply.
func (a *Attrs[A]) Attach(id NodeID, attr *A) {
	a.instances[id] = attr
}

// Detach removes a node's attribute instance. No-op if absent.
func (a *Attrs[A]) Detach(id NodeID) {
	delete(a.instances, id)
}

// Get returns the attribute instance attached to a node, if any.
func (a *Attrs[A]) Get(id NodeID) (*A, bool) {
	attr, ok := a.instances[id]
	return attr, ok
}

// Len returns the number of attached instances.
func (a *Attrs[A]) Len() int {
	return len(a.instances)
}

// sinkDriver is the type-erased per-sink entry the engine iterates during
// Apply. One driver exists per registered attribute type, instantiated at
// compile time; there is no runtime registry of instances.
type sinkDriver interface {
	apply(t *Table)
}

type sinkSet[A, Cx any] struct {
	attrs *Attrs[A]
	cx    Cx
	fn    ApplyFunc[A, Cx]
}

func (s *sinkSet[A, Cx]) apply(t *Table) {
	for id, attr := range s.attrs.instances {
		if opacity, ok := t.entries[id]; ok {
			s.fn(attr, s.cx, opacity)
		}
	}
}

// RegisterSink registers an attribute type with the engine's per-frame
// dispatch and returns the instance store the host attaches attributes to.
// Every Apply invokes fn once per node that has both an attribute instance
// and an effective opacity this frame; nodes outside any opacity subtree
// keep their last-applied value.
//
// Register each attribute type once, before the first frame. Sinks must be
// independent: fn must not touch another sink type's attributes, since
// dispatch order across sink types is unspecified.
func RegisterSink[A, Cx any](e *Engine, cx Cx, fn ApplyFunc[A, Cx]) *Attrs[A] {
	attrs := &Attrs[A]{instances: make(map[NodeID]*A)}
	e.sinks = append(e.sinks, &sinkSet[A, Cx]{attrs: attrs, cx: cx, fn: fn})
	return attrs
}

// RegisterFader registers a context-free attribute type whose pointer
// implements [Fader]:
//
//	colors := veil.RegisterFader[veil.Color](engine)
func RegisterFader[A any, PA interface {
	*A
	Fader
}](e *Engine) *Attrs[A] {
	return RegisterSink(e, struct{}{}, func(attr *A, _ struct{}, opacity float64) {
		PA(attr).ApplyOpacity(opacity)
	})
}

// Apply writes the current effective opacity table into every registered
// sink, one sink type at a time. Runs after Compose in the frame order.
func (e *Engine) Apply() {
	for _, s := range e.sinks {
		s.apply(&e.table)
	}
}

// ApplyParallel is Apply with sink types dispatched concurrently. Safe
// because registered sinks are disjoint over attribute types and the table
// is read-only during this phase. Worth it only when several sinks cover
// many nodes each.
func (e *Engine) ApplyParallel() {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, s := range e.sinks {
		g.Go(func() error {
			s.apply(&e.table)
			return nil
		})
	}
	g.Wait()
}
