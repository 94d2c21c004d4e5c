package slicer

import (
	"testing"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

func TestEntityUpdate(t *testing.T) {
	tests := []struct {
		name    string
		factor  float64
		wantPos core.Vec2
		wantVY  float64
	}{
		{"full speed", 1.0, core.V(102, 90), -9.5},
		{"half speed", 0.5, core.V(101, 95), -9.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHazard(Body{
				Pos:     core.V(100, 100),
				Vel:     core.V(2, -10),
				Radius:  20,
				Gravity: 0.5,
			})
			e.Update(tt.factor)

			if e.Pos != tt.wantPos {
				t.Errorf("Pos = %v, expected %v", e.Pos, tt.wantPos)
			}
			if e.Vel.Y != tt.wantVY {
				t.Errorf("Vel.Y = %v, expected %v", e.Vel.Y, tt.wantVY)
			}
			if e.Vel.X != 2 {
				t.Errorf("Vel.X = %v, expected 2", e.Vel.X)
			}
		})
	}
}

func TestEntityUpdateZeroVelocity(t *testing.T) {
	e := NewHazard(Body{Pos: core.V(300, 300), Radius: 20})
	for range 10 {
		e.Update(1)
	}
	if e.Pos != core.V(300, 300) {
		t.Errorf("Pos = %v, expected entity to stay at (300,300)", e.Pos)
	}
}

func TestEntityIntersectsSegment(t *testing.T) {
	e := NewHazard(Body{Pos: core.V(100, 100), Radius: 20})

	tests := []struct {
		name string
		a, b core.Vec2
		want bool
	}{
		{"through center", core.V(70, 100), core.V(130, 100), true},
		{"tangent", core.V(70, 120), core.V(130, 120), true},
		{"just outside", core.V(70, 120.5), core.V(130, 120.5), false},
		{"stops short", core.V(0, 100), core.V(79, 100), false},
		{"ends inside", core.V(0, 100), core.V(90, 100), true},
		{"degenerate inside", core.V(100, 110), core.V(100, 110), true},
		{"degenerate outside", core.V(100, 125), core.V(100, 125), false},
		{"diagonal", core.V(50, 50), core.V(150, 150), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IntersectsSegment(core.Seg(tt.a, tt.b)); got != tt.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.want)
			}
			// Direction must not matter
			if got := e.IntersectsSegment(core.Seg(tt.b, tt.a)); got != tt.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, expected %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEntityIsOffScreen(t *testing.T) {
	const w, h = 800, 600

	tests := []struct {
		name string
		pos  core.Vec2
		want bool
	}{
		{"inside", core.V(400, 300), false},
		{"touching bottom", core.V(400, 620), false},
		{"below bottom", core.V(400, 620.5), true},
		{"touching left", core.V(-20, 300), false},
		{"past left", core.V(-20.5, 300), true},
		{"touching right", core.V(820, 300), false},
		{"past right", core.V(820.5, 300), true},
		{"far above top", core.V(400, -500), false},
		{"spawn point", core.V(400, 610), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHazard(Body{Pos: tt.pos, Radius: 20})
			if got := e.IsOffScreen(w, h); got != tt.want {
				t.Errorf("IsOffScreen() at %v = %v, expected %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestEntitySliceIsPermanent(t *testing.T) {
	e := NewHazard(Body{Pos: core.V(0, 0), Radius: 20})
	if e.Sliced() {
		t.Fatal("new entity should not be sliced")
	}
	e.Slice()
	e.Slice()
	if !e.Sliced() {
		t.Error("Sliced() = false after Slice()")
	}
}

func TestNewFruitTiers(t *testing.T) {
	points := [3]int{5, 10, 15}

	tests := []struct {
		roll     int
		wantTier FruitTier
		wantPts  int
	}{
		{0, TierLow, 5},
		{1, TierMid, 10},
		{2, TierHigh, 15},
	}

	for _, tt := range tests {
		t.Run(tt.wantTier.String(), func(t *testing.T) {
			rng := &seqRand{ints: []int{tt.roll}}
			e := NewFruit(Body{Radius: 20}, rng, points)

			if e.Kind != KindFruit {
				t.Errorf("Kind = %v, expected fruit", e.Kind)
			}
			if e.Tier != tt.wantTier {
				t.Errorf("Tier = %v, expected %v", e.Tier, tt.wantTier)
			}
			if e.Points() != tt.wantPts {
				t.Errorf("Points() = %d, expected %d", e.Points(), tt.wantPts)
			}
		})
	}
}

func TestNewBonusKinds(t *testing.T) {
	tests := []struct {
		roll      float64
		wantBonus BonusKind
		wantPts   int
	}{
		{0.0, BonusExtraLife, 0},
		{0.49999, BonusExtraLife, 0},
		{0.5, BonusSlowMotion, 5},
		{0.99999, BonusSlowMotion, 5},
	}

	for _, tt := range tests {
		rng := &seqRand{floats: []float64{tt.roll}}
		e := NewBonus(Body{Radius: 20}, rng, 5)

		if e.Bonus != tt.wantBonus {
			t.Errorf("roll %v: Bonus = %v, expected %v", tt.roll, e.Bonus, tt.wantBonus)
		}
		if e.Points() != tt.wantPts {
			t.Errorf("roll %v: Points() = %d, expected %d", tt.roll, e.Points(), tt.wantPts)
		}
	}
}

func TestHazardHasNoPoints(t *testing.T) {
	e := NewHazard(Body{Radius: 20})
	if e.Points() != 0 {
		t.Errorf("Points() = %d, expected 0", e.Points())
	}
	if e.String() != "hazard" {
		t.Errorf("String() = %q, expected %q", e.String(), "hazard")
	}
}
