package slicer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Layout constants.
const (
	FieldTop   = 1  // Rows reserved for the HUD above the play field
	MinScreenW = 40 // Smallest usable terminal width
	MinScreenH = 12 // Smallest usable terminal height
)

// Glyphs.
const (
	FillChar       = '█'
	TrailChar      = '·'
	HazardLabel    = 'B'
	ExtraLifeLabel = '+'
	SlowMoLabel    = 'S'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
)

// FieldViewport returns the mapping between the play area and the rows of a
// screen below the HUD.
func FieldViewport(screenW, screenH, arenaW, arenaH int) core.Viewport {
	return core.Viewport{
		CellsW: screenW,
		CellsH: core.Max(screenH-FieldTop, 1),
		ArenaW: arenaW,
		ArenaH: arenaH,
	}
}

// CellToArena maps screen cell (x, y) to the play-area point drawn there.
func (g *Game) CellToArena(screenW, screenH, x, y int) core.Vec2 {
	w, h := g.Arena()
	return FieldViewport(screenW, screenH, w, h).ToArena(x, y-FieldTop)
}

// Draw renders a snapshot. Layout adapts to the screen size; the simulation
// never depends on it.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	vp := FieldViewport(dst.Width(), dst.Height(), s.ArenaW, s.ArenaH)

	for _, e := range s.Entities {
		drawEntity(dst, vp, e)
	}
	drawTrail(dst, vp, s.Trail)

	drawHUD(dst, s)

	if s.Message != "" {
		dst.DrawTextCenteredColored(FieldTop+1, s.Message, core.ColorBrightYellow)
	}

	switch {
	case s.GameOver:
		drawOverlay(dst, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Final Score: %d", s.Score),
			fmt.Sprintf("High Score: %d", s.HighScore),
			fmt.Sprintf("Sliced %d  Missed %d  Best combo %d",
				s.Stats.FruitsSliced, s.Stats.FruitsMissed, s.Stats.BestCombo),
			"",
			"r restart · q quit",
		)
	case s.Paused:
		drawOverlay(dst, core.ColorBrightWhite, "PAUSED", "", "p resume · q quit")
	}
}

// drawHUD draws score, lives and high score on the top row.
func drawHUD(dst *core.Screen, s Snapshot) {
	score := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	if s.SlowMotion > 0 {
		dst.DrawTextColored(len(score)+3, 0, "SLOW", core.ColorBrightCyan)
	}

	var hearts strings.Builder
	for i := range core.Max(s.MaxLives, s.Lives) {
		if i < s.Lives {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextCenteredColored(0, hearts.String(), core.ColorRed)

	best := fmt.Sprintf("Best: %d", s.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
}

// drawEntity fills the cells whose centers fall inside the entity's circle.
// Entities smaller than a cell still occupy the cell holding their center.
func drawEntity(dst *core.Screen, vp core.Viewport, e EntityView) {
	if e.Sliced {
		return
	}

	color, label := entityStyle(e)
	r := float64(e.Radius)

	x0, y0 := vp.ToCell(core.V(e.Pos.X-r, e.Pos.Y-r))
	x1, y1 := vp.ToCell(core.V(e.Pos.X+r, e.Pos.Y+r))
	for y := core.Max(y0, 0); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vp.ToArena(x, y).Dist(e.Pos) <= r {
				dst.SetColored(x, y+FieldTop, FillChar, color)
			}
		}
	}

	cx, cy := vp.ToCell(e.Pos)
	if cy < 0 {
		return
	}
	if label != 0 {
		dst.SetColored(cx, cy+FieldTop, label, core.ColorBrightWhite)
	} else {
		dst.SetColored(cx, cy+FieldTop, FillChar, color)
	}
}

// entityStyle returns the fill color and center label for an entity.
// A zero label means the center is filled like the rest.
func entityStyle(e EntityView) (core.Color, rune) {
	switch e.Kind {
	case KindHazard:
		return core.ColorGray, HazardLabel
	case KindBonus:
		if e.Bonus == BonusSlowMotion {
			return core.ColorCyan, SlowMoLabel
		}
		return core.ColorPink, ExtraLifeLabel
	default:
		switch e.Tier {
		case TierMid:
			return core.ColorOrange, 0
		case TierHigh:
			return core.ColorYellow, 0
		default:
			return core.ColorRed, 0
		}
	}
}

// drawTrail connects consecutive gesture points.
func drawTrail(dst *core.Screen, vp core.Viewport, trail []core.Vec2) {
	if len(trail) == 1 {
		x, y := vp.ToCell(trail[0])
		dst.SetColored(x, y+FieldTop, TrailChar, core.ColorBrightWhite)
		return
	}
	for i := 1; i < len(trail); i++ {
		x0, y0 := vp.ToCell(trail[i-1])
		x1, y1 := vp.ToCell(trail[i])
		dst.DrawLine(x0, y0+FieldTop, x1, y1+FieldTop, TrailChar, core.ColorBrightWhite)
	}
}

// drawOverlay draws a bordered box of centered lines in the middle of the screen.
func drawOverlay(dst *core.Screen, border core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)

	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}
