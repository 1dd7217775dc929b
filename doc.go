// Package veil is a hierarchical opacity engine for 2D scene graphs and UIs.
//
// Veil animates a per-node [Opacity] value over time, composites it down a
// parent/child hierarchy by multiplication, and writes the resulting
// effective opacity into any number of visual attributes (color alpha
// channels, shared materials, UI backgrounds) once per frame. It owns none
// of the hierarchy itself: the host scene graph stays the single source of
// truth for topology and node lifetime.
//
// Full documentation and examples are available at:
//
// https://phanxgames.github.io/veil/
//
// # Quick start
//
// Create an [Engine], attach opacity values by node ID, register sinks for
// the attribute types that should fade, and tick once per frame:
//
//	engine := veil.NewEngine()
//	colors := veil.RegisterFader[veil.Color](engine)
//
//	tree := veil.ChildMap{root: {child}}
//	engine.Attach(root, veil.New(1))
//	colors.Attach(child, &veil.Color{R: 1, G: 1, B: 1, A: 1})
//
//	// per frame:
//	engine.Tick(dt, tree, remover)
//
// [Engine.Tick] runs the fixed frame order: interpolate every opacity,
// flush despawn requests to the host (the barrier), rebuild the effective
// opacity table, then apply it to every registered sink. Hosts that need to
// interleave their own per-frame work call the four phases directly.
//
// # Opacity values
//
// [Opacity] is pure data: a current value, a target, a signed per-second
// speed, and a despawn flag. [Opacity.FadeIn], [Opacity.FadeOut],
// [Opacity.InterpolateTo] and [Opacity.InterpolateBySpeed] start linear
// transitions; [Opacity.Set] cancels whatever is in flight. A node whose
// fade-out completes is reported to the host as a removal request — veil
// never deletes nodes itself.
//
// A node's effective opacity is the product of its own value and every
// ancestor's value up to the nearest opacity-bearing root. Nodes outside
// any opacity subtree are left entirely alone.
//
// # Sinks
//
// A sink is an attribute type that knows how to receive an effective
// opacity. Simple attributes implement [Fader]; attributes that resolve
// through a shared resource (a [MaterialStore]) register an [ApplyFunc]
// with a context via [RegisterSink]. Built-in adapters cover [Color] alpha,
// handle-keyed materials, [UIColors] border/background selection, and
// ebiten-backed [Sprite] tints. New sinks plug in from independent modules
// without touching the engine.
//
// Eased (non-linear) fades are available via [TweenOpacity] (built on
// [gween]), and ECS integration via the [Donburi] adapter in veil/ecs.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package veil
