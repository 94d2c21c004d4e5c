package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slicer/internal/registry"
)

// Gesture is the swipe phase a mouse event stands for.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureStart
	GestureMove
	GestureEnd
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureStart:
		return "start"
	case GestureMove:
		return "move"
	case GestureEnd:
		return "end"
	default:
		return "none"
	}
}

// MouseGesture classifies a mouse event. Only the left button swipes;
// motion counts while a swipe is in progress, whatever button the terminal
// reports for it.
func MouseGesture(msg tea.MouseMsg, swiping bool) Gesture {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return GestureStart
		}
	case tea.MouseActionMotion:
		if swiping {
			return GestureMove
		}
	case tea.MouseActionRelease:
		if swiping {
			return GestureEnd
		}
	}
	return GestureNone
}

// forwardGesture maps the event into the game's play area and delivers it.
// Returns whether a swipe is in progress afterwards.
func forwardGesture(game registry.GestureGame, g Gesture, msg tea.MouseMsg, screenW, screenH int) bool {
	p := game.CellToArena(screenW, screenH, msg.X, msg.Y)

	switch g {
	case GestureStart:
		game.GestureStart(p)
		return true
	case GestureMove:
		game.GestureMove(p)
		return true
	case GestureEnd:
		game.GestureMove(p)
		game.GestureEnd()
		return false
	}
	return false
}
