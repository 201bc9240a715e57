package touchfield

import "math"

const (
	defaultMinZoomScale = 0.5
	defaultMaxZoomScale = 4.0

	// defaultTriggerDistance is the minimum inter-finger screen
	// distance for a second contact to start a pinch. Two fingers
	// barely apart are more likely an accidental double-touch than a
	// deliberate zoom.
	defaultTriggerDistance = 10.0
)

// contact is one tracked touch slot.
type contact struct {
	id  TouchID
	pos Vec2
	set bool

	// pinched records that this contact participated in an active
	// pinch at some point during its life; its end event is then
	// consumed so the release cannot register as a game action.
	pinched bool
}

// screenDistance returns the screen-space distance between two points.
func screenDistance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// ZoomRecognizer is a stateful two-finger pinch/pan tracker. It
// observes touch-contact events and drives a continuous zoom on its
// TransformTarget while keeping the screen point between the fingers
// visually stationary.
//
// At most two contacts are tracked; a third concurrent contact is
// neither tracked nor consumed. Handlers never fail: malformed or
// unexpected input is silently propagated.
//
// All handlers must be called from the host's single input thread, in
// the order the host delivers events.
type ZoomRecognizer struct {
	// MinScale and MaxScale bound the applied zoom.
	MinScale float64
	MaxScale float64

	// TriggerDistance is the minimum inter-finger distance (screen
	// units) below which two contacts are not treated as a pinch.
	TriggerDistance float64

	target TransformTarget
	space  LocalSpace

	first  contact
	second contact

	// initialDistance is the inter-finger distance at pinch start;
	// 0 means no active pinch.
	initialDistance float64
	initialScale    float64
	initialFocal    Vec2

	reset *resetAnim
}

// NewZoomRecognizer creates a recognizer driving target. space supplies
// screen-to-local conversion for focal-point stabilization; it may be
// nil, in which case zooming still works but is not stabilized. When
// target is a *Playfield, passing it as space too is the usual wiring.
func NewZoomRecognizer(target TransformTarget, space LocalSpace) *ZoomRecognizer {
	return &ZoomRecognizer{
		MinScale:        defaultMinZoomScale,
		MaxScale:        defaultMaxZoomScale,
		TriggerDistance: defaultTriggerDistance,
		target:          target,
		space:           space,
	}
}

// Active reports whether a pinch is in progress: both slots occupied
// and the initial distance cleared the trigger threshold.
func (r *ZoomRecognizer) Active() bool {
	return r.first.set && r.second.set && r.initialDistance > 0
}

// HandleTouch dispatches an event to the phase-specific handler.
// It reports whether the event was consumed.
func (r *ZoomRecognizer) HandleTouch(e TouchEvent) bool {
	switch e.Phase {
	case TouchBegin:
		return r.TouchBegan(e)
	case TouchMove:
		return r.TouchMoved(e)
	case TouchEnd:
		return r.TouchEnded(e)
	}
	return false
}

// TouchBegan handles a touch-begin event. The event is consumed only
// when it completes a pinch (second finger, far enough from the
// first); a lone first finger always propagates so it can still become
// a tap.
func (r *ZoomRecognizer) TouchBegan(e TouchEvent) bool {
	if !r.first.set {
		r.first = contact{id: e.ID, pos: e.Position, set: true}
		return false
	}
	if !r.second.set && e.ID != r.first.id {
		r.second = contact{id: e.ID, pos: e.Position, set: true}
		if r.startGesture() {
			r.first.pinched = true
			r.second.pinched = true
			return true
		}
		return false
	}
	// Third or duplicate contact: not tracked, not consumed.
	return false
}

// startGesture snapshots the pinch baseline. Returns false when the
// fingers are too close together to count as a deliberate pinch; the
// contacts stay tracked but no gesture is active.
func (r *ZoomRecognizer) startGesture() bool {
	if r.target == nil {
		return false
	}
	d := screenDistance(r.first.pos, r.second.pos)
	if d <= r.TriggerDistance {
		return false
	}
	r.cancelReset()
	r.initialDistance = d
	r.initialFocal = midpoint(r.first.pos, r.second.pos)
	r.initialScale = r.target.Scale()
	return true
}

// TouchMoved handles a touch-move event. Moves of tracked contacts
// update their stored position; while a pinch is active the transform
// is recomputed and the event consumed. Single-finger moves and moves
// of untracked contacts propagate.
func (r *ZoomRecognizer) TouchMoved(e TouchEvent) bool {
	c := r.slot(e.ID)
	if c == nil {
		return false
	}
	c.pos = e.Position
	if !r.Active() {
		return false
	}
	r.recompute()
	return true
}

// TouchEnded handles a touch-end event. The matching slot is cleared
// and any active gesture stops; the transform stays exactly as last
// set. The event is consumed only if this contact ever took part in an
// active pinch. Ends of untracked contacts are ignored.
func (r *ZoomRecognizer) TouchEnded(e TouchEvent) bool {
	c := r.slot(e.ID)
	if c == nil {
		return false
	}
	consumed := c.pinched
	*c = contact{}
	r.initialDistance = 0
	return consumed
}

// slot returns the tracked contact with the given ID, or nil.
func (r *ZoomRecognizer) slot(id TouchID) *contact {
	if r.first.set && r.first.id == id {
		return &r.first
	}
	if r.second.set && r.second.id == id {
		return &r.second
	}
	return nil
}

// recompute applies the current pinch state to the target.
//
// The focal point is the midpoint captured at gesture start, not the
// current one, so the anchor doesn't drift mid-gesture. Converting it
// to local space before and after the scale change and adding the
// delta to the offset cancels the shift the scale change alone would
// cause, keeping the point under the fingers fixed.
func (r *ZoomRecognizer) recompute() {
	d := screenDistance(r.first.pos, r.second.pos)
	if d <= r.TriggerDistance {
		// Fingers nearly coincide; skip this update rather than
		// divide by a degenerate distance. The gesture stays active.
		return
	}
	zoom := d / r.initialDistance
	scale := clamp(r.initialScale*zoom, r.MinScale, r.MaxScale)

	if r.space == nil {
		r.target.SetScale(scale)
		return
	}
	before, okBefore := r.space.ScreenToLocal(r.initialFocal)
	r.target.SetScale(scale)
	after, okAfter := r.space.ScreenToLocal(r.initialFocal)
	if okBefore && okAfter {
		r.target.SetOffset(r.target.Offset().Add(after.Sub(before)))
	}
}
