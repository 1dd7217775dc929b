package veil

// Handle identifies a material inside a [MaterialStore]. The zero Handle is
// never issued, so it can serve as "no material".
type Handle uint32

// MaterialStore is a shared, handle-keyed store of material values of one
// type. Several nodes may reference the same material through the same
// handle; applying opacity through a [RegisterMaterial] sink then updates
// them all at once.
//
// The store is the sink's shared context, not a per-node attribute. Like
// the engine, it is driven from a single goroutine.
type MaterialStore[M any] struct {
	materials map[Handle]*M
	next      Handle
}

// NewMaterialStore creates an empty store.
func NewMaterialStore[M any]() *MaterialStore[M] {
	return &MaterialStore[M]{materials: make(map[Handle]*M)}
}

// Add stores a material and returns its handle.
func (s *MaterialStore[M]) Add(m *M) Handle {
	s.next++
	s.materials[s.next] = m
	return s.next
}

// Get returns the material for a handle, if it is still loaded.
func (s *MaterialStore[M]) Get(h Handle) (*M, bool) {
	m, ok := s.materials[h]
	return m, ok
}

// Remove unloads a material. Nodes still referencing the handle simply stop
// receiving opacity updates; a dangling reference is not an error.
func (s *MaterialStore[M]) Remove(h Handle) {
	delete(s.materials, h)
}

// Len returns the number of loaded materials.
func (s *MaterialStore[M]) Len() int {
	return len(s.materials)
}

// MaterialRef is the per-node attribute for material-backed sinks: it names
// which material in the store the node is rendered with.
type MaterialRef struct {
	Handle Handle
}

// RegisterMaterial registers a sink that resolves each node's [MaterialRef]
// through the store and fades the referenced material. A handle missing
// from the store (unloaded, or never loaded) skips that node for the frame.
func RegisterMaterial[M any, PM interface {
	*M
	Fader
}](e *Engine, store *MaterialStore[M]) *Attrs[MaterialRef] {
	return RegisterSink(e, store, func(ref *MaterialRef, st *MaterialStore[M], opacity float64) {
		if m, ok := st.Get(ref.Handle); ok {
			PM(m).ApplyOpacity(opacity)
		}
	})
}

// FaderExtension decides how opacity reaches the base of an
// [ExtendedMaterial]. Implementations usually forward to the base and only
// exist to keep the extension in the material's type.
type FaderExtension[B any] interface {
	ApplyOpacity(base *B, opacity float64)
}

// ExtendedMaterial layers an extension (a decal, a wireframe pass) over a
// base material. Opacity is routed through the extension, which typically
// updates only the base; the combined material is itself a [Fader] and can
// live in a [MaterialStore].
type ExtendedMaterial[B any, E FaderExtension[B]] struct {
	Base      B
	Extension E
}

// ApplyOpacity forwards the opacity to the extension with the base.
func (m *ExtendedMaterial[B, E]) ApplyOpacity(opacity float64) {
	m.Extension.ApplyOpacity(&m.Base, opacity)
}

// BaseFade is a pass-through [FaderExtension] for extensions that carry no
// opacity of their own: the value goes straight to the base's own Fader.
type BaseFade[B any, PB interface {
	*B
	Fader
}] struct{}

// ApplyOpacity fades the base directly.
func (BaseFade[B, PB]) ApplyOpacity(base *B, opacity float64) {
	PB(base).ApplyOpacity(opacity)
}
