// Package touchfield adds touch-screen playfield control to rhythm-game
// clients built on [Ebitengine].
//
// Two pieces do the work. A [ZoomRecognizer] tracks two-finger
// pinch/pan gestures and drives a continuous zoom on a playfield
// container, keeping the point between the fingers visually
// stationary and swallowing the touch events of an in-progress pinch
// so they cannot double as gameplay taps. [RadiusMultiplier] computes
// a one-time scale multiplier that makes the host's
// circle-size-derived hit-target radius match a reference client's
// radius for the same difficulty value.
//
// # Quick start
//
// Wire both through [TouchControl] in your game's Update:
//
//	field := touchfield.NewPlayfield()
//	zoom := touchfield.TouchControl{CircleSize: cs}.Apply(field)
//	source := touchfield.NewTouchSource()
//
//	func (g *Game) Update() error {
//		g.source.Poll(touchfield.TouchHandlerFunc(func(e touchfield.TouchEvent) bool {
//			if g.zoom.HandleTouch(e) {
//				return true // consumed by the pinch; never a tap
//			}
//			return g.judgeTap(e)
//		}))
//		return nil
//	}
//
// Events the recognizer consumes must not reach gameplay judging;
// everything else flows through untouched, so single-finger play is
// unaffected.
//
// # Transform model
//
// [Playfield] is the slice of the host scene graph this package owns:
// a uniform scale plus a content offset, composed under an arbitrary
// parent transform. Hosts with their own container type implement
// [TransformTarget] (and optionally [LocalSpace] for focal-point
// stabilization) instead.
//
// Nothing in this package returns an error or panics on malformed
// input: a best-effort visual enhancement must never interrupt active
// gameplay, so every fallible step degrades to a no-op.
//
// [Ebitengine]: https://ebitengine.org
package touchfield
