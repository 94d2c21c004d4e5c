package slicer

import (
	"fmt"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// kindTable partitions [0, 1) into contiguous ranges, one per variant.
// Range i is [bounds[i-1], bounds[i]) with an implicit lower bound of 0.
type kindTable struct {
	kinds  [3]Kind
	bounds [3]float64
}

// newKindTable builds the partition from relative weights.
// Zero-weight variants get an empty range and are never selected.
func newKindTable(w config.SpawnWeight) (kindTable, error) {
	if w.Fruit < 0 || w.Hazard < 0 || w.Bonus < 0 {
		return kindTable{}, fmt.Errorf("spawn weights must be non-negative, got %+v", w)
	}
	total := w.Total()
	if total <= 0 {
		return kindTable{}, fmt.Errorf("spawn weights must not all be zero")
	}

	t := kindTable{kinds: [3]Kind{KindFruit, KindHazard, KindBonus}}
	cumulative := 0
	for i, weight := range [3]int{w.Fruit, w.Hazard, w.Bonus} {
		cumulative += weight
		t.bounds[i] = float64(cumulative) / float64(total)
	}
	t.bounds[2] = 1
	return t, nil
}

// pick maps a roll in [0, 1) to a variant.
func (t kindTable) pick(roll float64) Kind {
	for i, b := range t.bounds {
		if roll < b {
			return t.kinds[i]
		}
	}
	return t.kinds[len(t.kinds)-1]
}

// Spawner launches new entities from below the play area at a fixed cadence.
type Spawner struct {
	spawn   config.SpawnConfig
	arena   config.ArenaConfig
	gravity float64
	scoring config.ScoringConfig
	rng     Rand
	table   kindTable
	counter int
}

// NewSpawner creates a spawner. It fails if the spawn weights cannot form a
// partition of [0, 1).
func NewSpawner(cfg config.SlicerConfig, rng Rand) (*Spawner, error) {
	table, err := newKindTable(cfg.Spawn.Weights)
	if err != nil {
		return nil, fmt.Errorf("spawner: %w", err)
	}

	return &Spawner{
		spawn:   cfg.Spawn,
		arena:   cfg.Arena,
		gravity: cfg.Physics.Gravity,
		scoring: cfg.Scoring,
		rng:     rng,
		table:   table,
	}, nil
}

// Reset zeroes the frame counter.
func (s *Spawner) Reset() {
	s.counter = 0
}

// MaybeSpawn counts one frame and returns a new entity when the counter
// reaches interval, resetting the counter. Otherwise returns nil.
func (s *Spawner) MaybeSpawn(interval int) *Entity {
	s.counter++
	if s.counter < interval {
		return nil
	}
	s.counter = 0
	return s.Spawn()
}

// Spawn creates an entity just below the bottom edge with a random upward
// launch velocity and a weighted random variant.
func (s *Spawner) Spawn() *Entity {
	x := s.spawn.Inset + s.rng.Intn(s.arena.Width-2*s.spawn.Inset)
	y := s.arena.Height + s.spawn.BelowOffset
	vy := -(s.rng.Float64()*s.spawn.UpSpeedRange + s.spawn.MinUpSpeed)
	vx := s.rng.Float64()*2*s.spawn.SideSpeed - s.spawn.SideSpeed

	body := Body{
		Pos:     core.V(float64(x), float64(y)),
		Vel:     core.V(vx, vy),
		Radius:  s.spawn.Radius,
		Gravity: s.gravity,
	}

	switch s.table.pick(s.rng.Float64()) {
	case KindHazard:
		return NewHazard(body)
	case KindBonus:
		return NewBonus(body, s.rng, s.scoring.SlowMotionPoints)
	default:
		return NewFruit(body, s.rng, s.scoring.FruitPoints)
	}
}
