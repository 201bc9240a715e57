package touchfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetAnim holds active zoom-reset tweens for scale and offset.
type resetAnim struct {
	tweenS *gween.Tween
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneS  bool
	doneX  bool
	doneY  bool
}

// ResetZoom animates the target back to the given baseline scale and a
// zero offset over duration seconds. Ending a pinch never snaps back on
// its own; this is the explicit way for a host to offer "return to
// normal". A pinch starting mid-animation cancels it — the fingers win.
func (r *ZoomRecognizer) ResetZoom(toScale float64, duration float32, easeFn ease.TweenFunc) {
	if r.target == nil {
		return
	}
	off := r.target.Offset()
	r.reset = &resetAnim{
		tweenS: gween.New(float32(r.target.Scale()), float32(toScale), duration, easeFn),
		tweenX: gween.New(float32(off.X), 0, duration, easeFn),
		tweenY: gween.New(float32(off.Y), 0, duration, easeFn),
	}
}

// Update advances a running zoom-reset animation by dt seconds. Call
// once per frame; no-op when nothing is animating.
func (r *ZoomRecognizer) Update(dt float32) {
	a := r.reset
	if a == nil {
		return
	}
	if !a.doneS {
		val, done := a.tweenS.Update(dt)
		r.target.SetScale(float64(val))
		a.doneS = done
	}
	off := r.target.Offset()
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		off.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		off.Y = float64(val)
		a.doneY = done
	}
	r.target.SetOffset(off)
	if a.doneS && a.doneX && a.doneY {
		r.reset = nil
	}
}

// Resetting reports whether a zoom-reset animation is in progress.
func (r *ZoomRecognizer) Resetting() bool {
	return r.reset != nil
}

// cancelReset drops any running zoom-reset animation.
func (r *ZoomRecognizer) cancelReset() {
	r.reset = nil
}
