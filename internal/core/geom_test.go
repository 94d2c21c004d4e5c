package core

import (
	"math"
	"testing"
)

func TestSegmentDistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		seg      Segment
		p        Vec2
		expected float64
	}{
		{"point on segment", Seg(V(0, 0), V(10, 0)), V(5, 0), 0},
		{"perpendicular above middle", Seg(V(0, 0), V(10, 0)), V(5, 3), 3},
		{"beyond end A", Seg(V(0, 0), V(10, 0)), V(-3, 4), 5},
		{"beyond end B", Seg(V(0, 0), V(10, 0)), V(13, 4), 5},
		{"diagonal segment", Seg(V(0, 0), V(10, 10)), V(10, 0), math.Sqrt(50)},
		{"degenerate segment", Seg(V(2, 2), V(2, 2)), V(5, 6), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.seg.DistanceTo(tc.p)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("DistanceTo() = %v, expected %v", got, tc.expected)
			}
			// Endpoint order must not matter
			rev := Seg(tc.seg.B, tc.seg.A)
			if gotRev := rev.DistanceTo(tc.p); math.Abs(gotRev-tc.expected) > 1e-9 {
				t.Errorf("DistanceTo() (reversed) = %v, expected %v", gotRev, tc.expected)
			}
		})
	}
}

func TestSegmentClosestPointClamps(t *testing.T) {
	s := Seg(V(0, 0), V(4, 0))

	if got := s.ClosestPoint(V(-10, 1)); got != s.A {
		t.Errorf("ClosestPoint before A = %v, expected %v", got, s.A)
	}
	if got := s.ClosestPoint(V(10, 1)); got != s.B {
		t.Errorf("ClosestPoint after B = %v, expected %v", got, s.B)
	}
	if got := s.ClosestPoint(V(1, 7)); got != V(1, 0) {
		t.Errorf("ClosestPoint mid = %v, expected (1, 0)", got)
	}
}

func TestVec2Ops(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale() = %v, expected (1.5, -2)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := V(0, 0).Dist(V(3, 4)); got != 5 {
		t.Errorf("Dist() = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
