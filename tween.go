package veil

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// OpacityTween animates an [Opacity] along an eased curve. The engine's own
// interpolation is strictly linear; a tween covers everything else (bounce,
// cubic, elastic) by writing the eased value through [Opacity.Set] each
// frame, which keeps the opacity stable from the engine's point of view.
//
// There is no global tween manager — callers call Update themselves, before
// [Engine.Interpolate] in the frame.
type OpacityTween struct {
	tween  *gween.Tween
	target *Opacity
	Done   bool
}

// TweenOpacity creates a tween from the opacity's current value to the
// given target over the specified duration using the easing function.
func TweenOpacity(op *Opacity, to float64, duration float32, fn ease.TweenFunc) *OpacityTween {
	return &OpacityTween{
		tween:  gween.New(float32(op.Get()), float32(to), duration, fn),
		target: op,
	}
}

// Update advances the tween by dt seconds and writes the eased value to the
// opacity. Sets Done when the curve completes; further calls are no-ops.
func (t *OpacityTween) Update(dt float32) {
	if t.Done {
		return
	}
	v, finished := t.tween.Update(dt)
	t.target.Set(float64(v))
	t.Done = finished
}
