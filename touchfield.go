package touchfield

// Vec2 is a 2D vector used for positions, offsets, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// TouchID identifies one continuous finger-down-to-finger-up
// interaction. It is stable for the duration of that contact and may
// be reused by the host afterwards.
type TouchID int64

// TouchPhase is the lifecycle stage of a touch contact.
type TouchPhase uint8

const (
	TouchBegin TouchPhase = iota // finger down
	TouchMove                    // finger moved while down
	TouchEnd                     // finger up
)

// TouchEvent is one touch-contact lifecycle event in screen space.
// Events for a given ID arrive strictly ordered: one begin, any number
// of moves, one end.
type TouchEvent struct {
	ID       TouchID
	Phase    TouchPhase
	Position Vec2
}

// TouchHandler consumes touch events. The return value reports whether
// the event was consumed: a consumed event must not be forwarded to
// gameplay input (e.g. tap judging); a propagated event flows on
// normally.
type TouchHandler interface {
	HandleTouch(TouchEvent) bool
}

// TouchHandlerFunc adapts a function to the TouchHandler interface.
// Handy for chaining: try the recognizer first, forward unconsumed
// events to gameplay.
type TouchHandlerFunc func(TouchEvent) bool

// HandleTouch calls f(e).
func (f TouchHandlerFunc) HandleTouch(e TouchEvent) bool { return f(e) }

// TransformTarget is the mutable (uniform scale, position) pair of the
// container being manipulated. The position is a content offset in the
// container's local (pre-scale) units; see Playfield for the reference
// implementation of that convention.
type TransformTarget interface {
	Scale() float64
	SetScale(float64)
	Offset() Vec2
	SetOffset(Vec2)
}

// LocalSpace converts a screen-space point into a container's local
// coordinate space under its current transform. The boolean result is
// false when conversion is unavailable this frame; callers degrade by
// skipping position compensation.
type LocalSpace interface {
	ScreenToLocal(Vec2) (Vec2, bool)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
