package touchfield

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recorder collects dispatched touch events.
type recorder struct {
	events []TouchEvent
}

func (r *recorder) HandleTouch(e TouchEvent) bool {
	r.events = append(r.events, e)
	return false
}

// frame feeds one simulated frame of touch state into the source.
func frame(s *TouchSource, h TouchHandler, touches map[ebiten.TouchID]Vec2) {
	ids := make([]ebiten.TouchID, 0, len(touches))
	for id := range touches {
		ids = append(ids, id)
	}
	s.dispatch(ids, func(id ebiten.TouchID) Vec2 { return touches[id] }, h)
}

func assertEvent(t *testing.T, got TouchEvent, id TouchID, phase TouchPhase, pos Vec2) {
	t.Helper()
	if got.ID != id || got.Phase != phase || got.Position != pos {
		t.Errorf("event = %+v, want id=%v phase=%v pos=%v", got, id, phase, pos)
	}
}

func TestTouchSourceLifecycle(t *testing.T) {
	s := NewTouchSource()
	rec := &recorder{}

	// New ID: begin.
	frame(s, rec, map[ebiten.TouchID]Vec2{1: {10, 10}})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 1, TouchBegin, Vec2{10, 10})

	// Same position: nothing.
	rec.events = nil
	frame(s, rec, map[ebiten.TouchID]Vec2{1: {10, 10}})
	if len(rec.events) != 0 {
		t.Fatalf("stationary touch produced %d events", len(rec.events))
	}

	// Moved: move.
	frame(s, rec, map[ebiten.TouchID]Vec2{1: {30, 40}})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 1, TouchMove, Vec2{30, 40})

	// Vanished: end at last known position.
	rec.events = nil
	frame(s, rec, map[ebiten.TouchID]Vec2{})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 1, TouchEnd, Vec2{30, 40})
}

func TestTouchSourceSecondFinger(t *testing.T) {
	s := NewTouchSource()
	rec := &recorder{}

	frame(s, rec, map[ebiten.TouchID]Vec2{1: {10, 10}})
	rec.events = nil

	frame(s, rec, map[ebiten.TouchID]Vec2{1: {10, 10}, 2: {200, 10}})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 2, TouchBegin, Vec2{200, 10})

	// First finger lifts while the second stays.
	rec.events = nil
	frame(s, rec, map[ebiten.TouchID]Vec2{2: {200, 10}})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 1, TouchEnd, Vec2{10, 10})
}

func TestTouchSourceArenaOverflow(t *testing.T) {
	s := NewTouchSource()
	rec := &recorder{}

	touches := make(map[ebiten.TouchID]Vec2)
	for i := 0; i < maxTouches+3; i++ {
		touches[ebiten.TouchID(i)] = Vec2{float64(i), 0}
	}
	frame(s, rec, touches)

	begins := 0
	for _, e := range rec.events {
		if e.Phase == TouchBegin {
			begins++
		}
	}
	if begins != maxTouches {
		t.Errorf("got %d begins, want %d (overflow must be ignored)", begins, maxTouches)
	}
}

func TestTouchSourceSlotReuse(t *testing.T) {
	s := NewTouchSource()
	rec := &recorder{}

	frame(s, rec, map[ebiten.TouchID]Vec2{7: {1, 1}})
	frame(s, rec, map[ebiten.TouchID]Vec2{})
	rec.events = nil

	// A fresh ID after a release gets a begin, not a stale move.
	frame(s, rec, map[ebiten.TouchID]Vec2{8: {2, 2}})
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	assertEvent(t, rec.events[0], 8, TouchBegin, Vec2{2, 2})
}

func TestTouchSourceDrivesRecognizer(t *testing.T) {
	s := NewTouchSource()
	field := NewPlayfield()
	zoom := NewZoomRecognizer(field, field)

	frame(s, zoom, map[ebiten.TouchID]Vec2{1: {100, 200}})
	frame(s, zoom, map[ebiten.TouchID]Vec2{1: {100, 200}, 2: {300, 200}})
	frame(s, zoom, map[ebiten.TouchID]Vec2{1: {50, 200}, 2: {300, 200}})
	assertNear(t, "scale through source", field.Scale(), 1.25)

	frame(s, zoom, map[ebiten.TouchID]Vec2{})
	if zoom.Active() {
		t.Error("gesture still active after all touches released")
	}
	assertNear(t, "scale after release", field.Scale(), 1.25)
}
