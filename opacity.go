package veil

import (
	"encoding/json"
	"fmt"
	"math"
)

// Opacity is a per-node opacity value with built-in linear interpolation
// state. The zero value is fully transparent and stable; use [New] or the
// package-level [Opaque]/[Invisible] values for explicit starting points.
//
// Values are conventionally in [0, 1]. Mutators do not validate or clamp
// their inputs; clamping happens only when an interpolation completes.
type Opacity struct {
	current  float64
	target   float64
	speed    float64
	despawns bool
}

// Opaque is opacity 1.0, the default for new nodes. Showing content by
// default beats hiding it implicitly.
var Opaque = New(1)

// Invisible is opacity 0.0.
var Invisible = New(0)

// New creates a stable (non-interpolating) opacity value.
func New(opacity float64) Opacity {
	return Opacity{current: opacity, target: opacity}
}

// NewFadeIn creates an opacity at 0.0 already interpolating to 1.0 over the
// given duration in seconds.
func NewFadeIn(duration float64) Opacity {
	return Opacity{target: 1, speed: 1 / duration}
}

// Get returns the current opacity value.
func (o *Opacity) Get() float64 {
	return o.current
}

// Target returns the value the opacity is interpolating toward. Equal to
// Get when the value is stable.
func (o *Opacity) Target() float64 {
	return o.target
}

// Set jumps straight to the given value, cancelling any in-flight
// interpolation or pending despawn.
func (o *Opacity) Set(opacity float64) {
	*o = New(opacity)
}

// FadeIn interpolates to 1.0 over the given duration in seconds and cancels
// any pending despawn. Duration must be positive.
func (o *Opacity) FadeIn(duration float64) {
	o.target = 1
	o.speed = 1 / duration
	o.despawns = false
}

// FadeOut interpolates to 0.0 over the given duration in seconds and
// requests removal of the owning node once it gets there.
//
// The despawn can be cancelled by calling Set, FadeIn, or InterpolateTo
// before the fade completes. To fade out without despawning, call
// InterpolateTo with opacity 0 instead.
func (o *Opacity) FadeOut(duration float64) {
	o.target = 0
	o.speed = -1 / duration
	o.despawns = true
}

// InterpolateTo interpolates to the given value, reaching it after duration
// seconds. Cancels any pending despawn.
func (o *Opacity) InterpolateTo(opacity, duration float64) {
	o.target = opacity
	o.speed = (opacity - o.current) / duration
	o.despawns = false
}

// InterpolateBySpeed interpolates to the given value at a fixed rate.
// Unlike [Opacity.InterpolateTo], duration here is the time to cross the
// full 0-to-1 range, NOT the time to reach the target: interpolating from
// 0.4 to 0.6 with duration 1.0 takes 0.2 seconds. Cancels any pending
// despawn.
func (o *Opacity) InterpolateBySpeed(opacity, duration float64) {
	o.target = opacity
	o.speed = math.Copysign(1, opacity-o.current) / duration
	o.despawns = false
}

// IsOpaque reports whether the current value is at least 1.0.
func (o *Opacity) IsOpaque() bool {
	return o.current >= 1
}

// IsVisible reports whether the current value is greater than 0.0.
func (o *Opacity) IsVisible() bool {
	return o.current > 0
}

// IsInvisible reports whether the current value is at most 0.0.
func (o *Opacity) IsInvisible() bool {
	return o.current <= 0
}

// IsDespawning reports whether a fade-out with despawn was started and has
// not been cancelled.
func (o *Opacity) IsDespawning() bool {
	return o.despawns
}

// advance moves current toward target by one frame of elapsed time.
// Reaching or overshooting the target clamps to it and ends the
// interpolation. Returns true exactly once per fade-out: on the step where
// a despawning value first reaches zero.
func (o *Opacity) advance(dt float64) bool {
	if o.speed == 0 {
		return false
	}
	o.current += o.speed * dt
	if o.speed > 0 {
		if o.current >= o.target {
			o.current = o.target
			o.speed = 0
		}
	} else if o.current <= o.target {
		o.current = o.target
		o.speed = 0
	}
	return o.despawns && o.current <= 0
}

// MarshalJSON encodes only the target value. In-flight interpolation state
// is deliberately not persisted.
func (o Opacity) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.target)
}

// UnmarshalJSON decodes a bare number into a stable opacity at that value.
func (o *Opacity) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parse opacity: %w", err)
	}
	*o = New(v)
	return nil
}
