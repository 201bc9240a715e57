package touchfield

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestResetZoomAnimates(t *testing.T) {
	target := &stubTarget{scale: 3, offset: Vec2{10, -5}}
	r := NewZoomRecognizer(target, nil)

	r.ResetZoom(1, 1.0, ease.Linear)
	if !r.Resetting() {
		t.Fatal("ResetZoom did not start an animation")
	}

	r.Update(0.5)
	assertNear(t, "scale midway", target.scale, 2)
	assertVec(t, "offset midway", target.offset, Vec2{5, -2.5})

	r.Update(0.6) // overshoots: clamps to the end values
	assertNear(t, "scale final", target.scale, 1)
	assertVec(t, "offset final", target.offset, Vec2{})
	if r.Resetting() {
		t.Error("animation still running after completion")
	}

	// Further updates are no-ops.
	target.scale = 2.5
	r.Update(1)
	assertNear(t, "scale untouched", target.scale, 2.5)
}

func TestResetZoomCancelledByPinch(t *testing.T) {
	field := NewPlayfield()
	field.SetScale(3)
	r := NewZoomRecognizer(field, field)

	r.ResetZoom(1, 1.0, ease.Linear)
	r.Update(0.25)

	// Fingers land mid-animation: the reset is dropped and the pinch
	// baselines against the scale the animation reached.
	r.HandleTouch(begin(1, 100, 200))
	r.HandleTouch(begin(2, 300, 200))
	if r.Resetting() {
		t.Error("reset animation survived a pinch start")
	}
	scaleAtGrab := field.Scale()

	r.HandleTouch(move(1, 0, 200)) // zoom 1.5
	assertNear(t, "scale", field.Scale(), clamp(scaleAtGrab*1.5, r.MinScale, r.MaxScale))
}

func TestResetZoomNilTarget(t *testing.T) {
	r := NewZoomRecognizer(nil, nil)
	r.ResetZoom(1, 1.0, ease.Linear)
	if r.Resetting() {
		t.Error("ResetZoom started with no target")
	}
	r.Update(0.5) // must not panic
}
