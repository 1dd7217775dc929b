package veil

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOpacityReachesTarget(t *testing.T) {
	op := New(0)
	tw := TweenOpacity(&op, 1.0, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 drift.
	tw.Update(0.5)
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(op.Get()-1.0) > 0.01 {
		t.Errorf("Get = %f, want ~1.0", op.Get())
	}
}

func TestTweenOpacityWritesStableValues(t *testing.T) {
	// Each tween step goes through Set, so the engine's own interpolation
	// never fights the eased curve.
	op := New(0)
	op.FadeIn(10.0) // in-flight linear fade the tween takes over

	tw := TweenOpacity(&op, 0.8, 1.0, ease.Linear)
	tw.Update(0.5)

	if op.Target() != op.Get() {
		t.Error("tweened value should be stable (target == current)")
	}
	if op.IsDespawning() {
		t.Error("tweened value should not despawn")
	}
	if op.advance(100) {
		t.Error("engine interpolation should be a no-op mid-tween")
	}
}

func TestTweenOpacityEasedCurveDiffersFromLinear(t *testing.T) {
	linear := New(0)
	cubic := New(0)
	twL := TweenOpacity(&linear, 1.0, 1.0, ease.Linear)
	twC := TweenOpacity(&cubic, 1.0, 1.0, ease.OutCubic)

	twL.Update(0.5)
	twC.Update(0.5)

	if math.Abs(linear.Get()-cubic.Get()) < 0.01 {
		t.Errorf("easing curves should differ at midpoint: linear=%f cubic=%f",
			linear.Get(), cubic.Get())
	}
}

func TestTweenOpacityDoneIsTerminal(t *testing.T) {
	op := New(0.2)
	tw := TweenOpacity(&op, 0.9, 0.5, ease.Linear)

	tw.Update(0.25)
	if tw.Done {
		t.Fatal("should not be Done partway through")
	}
	tw.Update(0.25)
	if !tw.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	before := op.Get()
	tw.Update(1.0)
	if op.Get() != before {
		t.Error("value changed after Done")
	}
}
