package slicer

import "github.com/vovakirdan/tui-slicer/internal/core"

// defaultTrailCap bounds how many points a gesture keeps for drawing.
const defaultTrailCap = 64

// SwipeTracker follows the player's current gesture.
// It is Idle until Start and Active until End.
type SwipeTracker struct {
	active   bool
	points   []core.Vec2
	fruits   int
	trailCap int
}

// NewSwipeTracker creates an idle tracker.
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{
		points:   make([]core.Vec2, 0, defaultTrailCap),
		trailCap: defaultTrailCap,
	}
}

// Start begins a gesture at p, discarding any previous points and resetting
// the fruit count.
func (s *SwipeTracker) Start(p core.Vec2) {
	s.active = true
	s.points = append(s.points[:0], p)
	s.fruits = 0
}

// Move appends p to an active gesture and returns the newest segment once at
// least two points exist. Moves while idle are ignored.
func (s *SwipeTracker) Move(p core.Vec2) (core.Segment, bool) {
	if !s.active {
		return core.Segment{}, false
	}

	if len(s.points) >= s.trailCap {
		// Drop the oldest point; the newest segment is unaffected.
		copy(s.points, s.points[1:])
		s.points = s.points[:len(s.points)-1]
	}
	s.points = append(s.points, p)

	n := len(s.points)
	if n < 2 {
		return core.Segment{}, false
	}
	return core.Seg(s.points[n-2], s.points[n-1]), true
}

// End finishes the gesture and clears its points.
// Returns the number of fruits sliced during it and whether a gesture was active.
func (s *SwipeTracker) End() (fruits int, wasActive bool) {
	fruits, wasActive = s.fruits, s.active
	s.active = false
	s.points = s.points[:0]
	s.fruits = 0
	return fruits, wasActive
}

// Reset returns the tracker to Idle without reporting anything.
func (s *SwipeTracker) Reset() {
	s.End()
}

// AddFruit counts one fruit sliced during the current gesture.
func (s *SwipeTracker) AddFruit() {
	s.fruits++
}

// Fruits returns the fruit count of the current gesture.
func (s *SwipeTracker) Fruits() int {
	return s.fruits
}

// Active reports whether a gesture is in progress.
func (s *SwipeTracker) Active() bool {
	return s.active
}

// Trail returns a copy of the current gesture's points for drawing.
func (s *SwipeTracker) Trail() []core.Vec2 {
	if len(s.points) == 0 {
		return nil
	}
	out := make([]core.Vec2, len(s.points))
	copy(out, s.points)
	return out
}
