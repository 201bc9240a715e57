package touchfield

import "github.com/hajimehoshi/ebiten/v2"

// maxTouches is the size of the touch slot arena.
const maxTouches = 10

type touchSlot struct {
	used bool
	id   ebiten.TouchID
	pos  Vec2
}

// TouchSource polls Ebitengine's touch state once per frame and
// synthesizes begin/move/end TouchEvents for a TouchHandler. Ebiten
// exposes touches as a per-frame ID set; diffing consecutive frames
// recovers the lifecycle: a new ID begins, a moved ID moves, a
// vanished ID ends at its last known position.
//
// Touches beyond the slot arena are ignored entirely.
type TouchSource struct {
	slots [maxTouches]touchSlot
	ids   []ebiten.TouchID // reused buffer
}

// NewTouchSource creates an empty touch source.
func NewTouchSource() *TouchSource {
	return &TouchSource{}
}

// Poll reads this frame's touch state and dispatches lifecycle events
// to h. Call once per Update.
func (s *TouchSource) Poll(h TouchHandler) {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.dispatch(s.ids, func(id ebiten.TouchID) Vec2 {
		x, y := ebiten.TouchPosition(id)
		return Vec2{float64(x), float64(y)}
	}, h)
}

// dispatch diffs the current ID set against the tracked slots and
// fires events. pos supplies the current position for an ID; split out
// from Poll so the diffing is testable without a display.
func (s *TouchSource) dispatch(ids []ebiten.TouchID, pos func(ebiten.TouchID) Vec2, h TouchHandler) {
	var seen [maxTouches]bool
	for _, id := range ids {
		i, fresh := s.slot(id)
		if i < 0 {
			continue
		}
		seen[i] = true
		p := pos(id)
		sl := &s.slots[i]
		if fresh {
			sl.pos = p
			h.HandleTouch(TouchEvent{ID: TouchID(id), Phase: TouchBegin, Position: p})
			continue
		}
		if p != sl.pos {
			sl.pos = p
			h.HandleTouch(TouchEvent{ID: TouchID(id), Phase: TouchMove, Position: p})
		}
	}

	// Sweep slots whose IDs vanished this frame.
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.used && !seen[i] {
			h.HandleTouch(TouchEvent{ID: TouchID(sl.id), Phase: TouchEnd, Position: sl.pos})
			*sl = touchSlot{}
		}
	}
}

// slot returns the arena index tracking id, allocating a free slot for
// an unseen ID. fresh reports a new allocation; index -1 means the
// arena is full.
func (s *TouchSource) slot(id ebiten.TouchID) (index int, fresh bool) {
	free := -1
	for i := range s.slots {
		if s.slots[i].used {
			if s.slots[i].id == id {
				return i, false
			}
		} else if free < 0 {
			free = i
		}
	}
	if free < 0 {
		return -1, false
	}
	s.slots[free] = touchSlot{used: true, id: id}
	return free, true
}
