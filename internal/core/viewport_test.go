package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{CellsW: 80, CellsH: 24, ArenaW: 800, ArenaH: 600}

	for _, c := range [][2]int{{0, 0}, {10, 5}, {79, 23}} {
		p := v.ToArena(c[0], c[1])
		x, y := v.ToCell(p)
		if x != c[0] || y != c[1] {
			t.Errorf("ToCell(ToArena(%d, %d)) = (%d, %d)", c[0], c[1], x, y)
		}
	}
}

func TestViewportToArenaCenters(t *testing.T) {
	v := Viewport{CellsW: 80, CellsH: 24, ArenaW: 800, ArenaH: 600}

	p := v.ToArena(0, 0)
	if p != V(5, 12.5) {
		t.Errorf("ToArena(0, 0) = %v, expected (5, 12.5)", p)
	}

	w, h := v.CellSize()
	if w != 10 || h != 25 {
		t.Errorf("CellSize() = (%v, %v), expected (10, 25)", w, h)
	}
}

func TestViewportNegativePixels(t *testing.T) {
	v := Viewport{CellsW: 80, CellsH: 24, ArenaW: 800, ArenaH: 600}

	x, y := v.ToCell(V(-1, -1))
	if x != -1 || y != -1 {
		t.Errorf("ToCell(-1, -1) = (%d, %d), expected (-1, -1)", x, y)
	}
}

func TestViewportDegenerate(t *testing.T) {
	var v Viewport
	if x, y := v.ToCell(V(10, 10)); x != 0 || y != 0 {
		t.Errorf("zero viewport ToCell = (%d, %d), expected (0, 0)", x, y)
	}
	if p := v.ToArena(3, 3); p != (Vec2{}) {
		t.Errorf("zero viewport ToArena = %v, expected zero", p)
	}
}
