package core

import "math"

// Viewport maps between a pixel-space play area and a grid of terminal cells.
// The whole play area is stretched over the whole grid.
type Viewport struct {
	CellsW, CellsH int // Grid size in characters
	ArenaW, ArenaH int // Play area size in pixels
}

// ToCell returns the cell containing pixel p.
func (v Viewport) ToCell(p Vec2) (x, y int) {
	if v.ArenaW <= 0 || v.ArenaH <= 0 {
		return 0, 0
	}
	fx := p.X * float64(v.CellsW) / float64(v.ArenaW)
	fy := p.Y * float64(v.CellsH) / float64(v.ArenaH)
	// Floor so off-screen pixels map to negative cells instead of row or column 0.
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// ToArena returns the pixel at the center of cell (x, y).
func (v Viewport) ToArena(x, y int) Vec2 {
	if v.CellsW <= 0 || v.CellsH <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (float64(x) + 0.5) * float64(v.ArenaW) / float64(v.CellsW),
		Y: (float64(y) + 0.5) * float64(v.ArenaH) / float64(v.CellsH),
	}
}

// CellSize returns the size of one cell in pixels.
func (v Viewport) CellSize() (w, h float64) {
	if v.CellsW <= 0 || v.CellsH <= 0 {
		return 0, 0
	}
	return float64(v.ArenaW) / float64(v.CellsW), float64(v.ArenaH) / float64(v.CellsH)
}
