package slicer

import (
	"math"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// EntityView is a read-only copy of an entity for drawing.
type EntityView struct {
	Pos    core.Vec2
	Radius int
	Kind   Kind
	Tier   FruitTier
	Bonus  BonusKind
	Sliced bool
}

// Snapshot is a consistent copy of everything the renderer needs.
// It shares no memory with the round.
type Snapshot struct {
	Tick          int
	Entities      []EntityView
	Trail         []core.Vec2
	Score         int
	Lives         int
	MaxLives      int
	HighScore     int
	Message       string
	GameOver      bool
	Paused        bool
	SlowMotion    int
	SpawnInterval int
	NextThreshold int
	ArenaW        int
	ArenaH        int
	Stats         Stats
}

// Snapshot copies the round's visible state.
func (r *Round) Snapshot() Snapshot {
	views := make([]EntityView, len(r.entities))
	for i, e := range r.entities {
		views[i] = EntityView{
			Pos:    e.Pos,
			Radius: e.Radius,
			Kind:   e.Kind,
			Tier:   e.Tier,
			Bonus:  e.Bonus,
			Sliced: e.Sliced(),
		}
	}

	return Snapshot{
		Tick:          r.tick,
		Entities:      views,
		Trail:         r.swipe.Trail(),
		Score:         r.score,
		Lives:         r.lives,
		MaxLives:      r.cfg.Lives.Max,
		HighScore:     r.high.Best(),
		Message:       r.message,
		GameOver:      r.state == StateGameOver,
		Paused:        r.paused,
		SlowMotion:    r.slowMotion,
		SpawnInterval: r.ramp.Interval(),
		NextThreshold: r.ramp.NextThreshold(),
		ArenaW:        r.cfg.Arena.Width,
		ArenaH:        r.cfg.Arena.Height,
		Stats:         r.stats,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SlowMotion)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextThreshold) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Spawned) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, e := range snap.Entities {
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Tier) //#nosec G115 -- hash computation
	}

	return h
}
