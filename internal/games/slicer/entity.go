package slicer

import (
	"fmt"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Kind tags the entity variant.
type Kind int

const (
	KindFruit Kind = iota
	KindHazard
	KindBonus
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindHazard:
		return "hazard"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// FruitTier selects a fruit's point value. Tiers differ only in points.
type FruitTier int

const (
	TierLow FruitTier = iota
	TierMid
	TierHigh
	tierCount
)

// String returns the fruit name for the tier.
func (t FruitTier) String() string {
	switch t {
	case TierLow:
		return "apple"
	case TierMid:
		return "orange"
	case TierHigh:
		return "banana"
	default:
		return "?"
	}
}

// BonusKind is the effect carried by a bonus entity.
type BonusKind int

const (
	BonusExtraLife BonusKind = iota
	BonusSlowMotion
)

// String returns the bonus name.
func (b BonusKind) String() string {
	switch b {
	case BonusExtraLife:
		return "extra-life"
	case BonusSlowMotion:
		return "slow-motion"
	default:
		return "?"
	}
}

// Body is the kinematic state an entity is launched with.
type Body struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  int
	Gravity float64 // px/frame² applied to vertical velocity
}

// Entity is a circular projectile in flight: a fruit, a hazard or a bonus.
// Kind selects which of Tier and Bonus is meaningful.
type Entity struct {
	Body
	Kind  Kind
	Tier  FruitTier
	Bonus BonusKind

	points int
	sliced bool
}

// NewFruit creates a fruit with a uniformly random tier.
// tierPoints holds the point values for the low, mid and high tiers.
func NewFruit(b Body, rng Rand, tierPoints [3]int) *Entity {
	tier := FruitTier(rng.Intn(int(tierCount)))
	return &Entity{
		Body:   b,
		Kind:   KindFruit,
		Tier:   tier,
		points: tierPoints[tier],
	}
}

// NewHazard creates a hazard. Hazards are worth no points.
func NewHazard(b Body) *Entity {
	return &Entity{
		Body: b,
		Kind: KindHazard,
	}
}

// NewBonus creates a bonus whose effect is ExtraLife or SlowMotion with equal
// probability. ExtraLife carries no points.
func NewBonus(b Body, rng Rand, slowMotionPoints int) *Entity {
	e := &Entity{
		Body: b,
		Kind: KindBonus,
	}
	if rng.Float64() < 0.5 {
		e.Bonus = BonusExtraLife
	} else {
		e.Bonus = BonusSlowMotion
		e.points = slowMotionPoints
	}
	return e
}

// Points returns the score awarded for slicing this entity.
func (e *Entity) Points() int {
	return e.points
}

// Update advances the entity one frame scaled by speedFactor:
// position moves by velocity*f, then gravity*f is added to vertical velocity.
func (e *Entity) Update(speedFactor float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(speedFactor))
	e.Vel.Y += e.Gravity * speedFactor
}

// IsOffScreen reports whether the circle is entirely below the bottom edge or
// entirely past the left or right edge. The top edge is never checked since
// entities rise above it and fall back in.
func (e *Entity) IsOffScreen(width, height int) bool {
	r := float64(e.Radius)
	return e.Pos.Y-r > float64(height) ||
		e.Pos.X+r < 0 ||
		e.Pos.X-r > float64(width)
}

// IntersectsSegment reports whether the segment passes within Radius of the
// center. A zero-length segment degrades to a point test.
func (e *Entity) IntersectsSegment(s core.Segment) bool {
	return s.DistanceTo(e.Pos) <= float64(e.Radius)
}

// Slice marks the entity as sliced. It cannot be undone.
func (e *Entity) Slice() {
	e.sliced = true
}

// Sliced returns whether the entity has been sliced.
func (e *Entity) Sliced() bool {
	return e.sliced
}

// String describes the variant for logs.
func (e *Entity) String() string {
	switch e.Kind {
	case KindFruit:
		return fmt.Sprintf("fruit(%s)", e.Tier)
	case KindBonus:
		return fmt.Sprintf("bonus(%s)", e.Bonus)
	default:
		return e.Kind.String()
	}
}
