package slicer

import (
	"fmt"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Transient messages shown after bonus pickups.
const (
	MsgExtraLife  = "+1 Life!"
	MsgSlowMotion = "Slow Motion Activated!"
)

// accepting reports whether gestures currently affect the round.
func (r *Round) accepting() bool {
	return r.state == StateRunning && !r.paused
}

// GestureStart begins a swipe at p.
func (r *Round) GestureStart(p core.Vec2) {
	if !r.accepting() {
		return
	}
	r.swipe.Start(p)
}

// GestureMove extends the swipe to p and slices everything the newest
// segment crosses. Moves without an active swipe are ignored.
func (r *Round) GestureMove(p core.Vec2) {
	if !r.accepting() {
		return
	}
	if seg, ok := r.swipe.Move(p); ok {
		r.sliceSegment(seg)
	}
}

// GestureEnd finishes the swipe and awards a combo for enough fruits.
func (r *Round) GestureEnd() {
	fruits, wasActive := r.swipe.End()
	if !wasActive || r.state != StateRunning {
		return
	}
	r.awardCombo(fruits)
}

// sliceSegment tests every unsliced entity against seg and applies the
// effects of each hit. Hit entities are removed by compacting the slice
// after the scan. Once the round ends, remaining entities are left alone.
func (r *Round) sliceSegment(seg core.Segment) {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if r.state == StateRunning && !e.Sliced() && e.IntersectsSegment(seg) {
			e.Slice()
			r.applySlice(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(r.entities[len(kept):])
	r.entities = kept
}

// applySlice applies the variant-specific effect of slicing e.
func (r *Round) applySlice(e *Entity) {
	switch e.Kind {
	case KindFruit:
		r.score += e.Points()
		r.swipe.AddFruit()
		r.stats.FruitsSliced++
		r.emit(EventSliced, e.Points(), e.String())

	case KindHazard:
		r.stats.HazardsSliced++
		r.emit(EventSliced, 0, e.String())
		r.loseLife()

	case KindBonus:
		r.score += e.Points()
		r.stats.BonusesSliced++
		r.emit(EventSliced, e.Points(), e.String())

		switch e.Bonus {
		case BonusExtraLife:
			r.gainLife()
			r.showMessage(MsgExtraLife)
		case BonusSlowMotion:
			// Refresh rather than stack
			r.slowMotion = r.cfg.Effects.SlowMotionFrames
			r.emit(EventSlowMotion, r.slowMotion, "")
			r.showMessage(MsgSlowMotion)
		}
	}
}

// awardCombo adds the combo bonus for a gesture that sliced fruits fruits.
// The bonus equals the fruit count; large combos also grant a life.
func (r *Round) awardCombo(fruits int) {
	if fruits < r.cfg.Scoring.ComboMin {
		return
	}

	r.score += fruits
	if fruits > r.stats.BestCombo {
		r.stats.BestCombo = fruits
	}
	r.emit(EventCombo, fruits, "")

	msg := ComboMessage(fruits)
	if fruits >= r.cfg.Scoring.ComboLifeAt {
		r.gainLife()
		msg += " " + MsgExtraLife
	}
	r.showMessage(msg)
}

// ComboMessage formats the combo announcement for n fruits.
func ComboMessage(n int) string {
	return fmt.Sprintf("%d Fruits Combo! +%d points", n, n)
}
