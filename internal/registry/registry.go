// Package registry provides a global registry for game factories.
// The binary registers its games at startup, so the commands and the SSH
// server create sessions by ID without knowing the concrete game type.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Game is the interface the platform drives once per tick.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "slicer").
	// Used for CLI commands and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads configuration and starts a fresh session.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Restart, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GestureGame is a Game that also consumes pointer swipes.
// Points are in the game's own play-area space; CellToArena maps terminal
// cells into it.
type GestureGame interface {
	Game

	// Arena returns the play area size in the units gestures are given in.
	Arena() (width, height int)

	// CellToArena maps cell (x, y) of a screen of the given size to the
	// play-area point drawn there.
	CellToArena(screenW, screenH, x, y int) core.Vec2

	// GestureStart begins a swipe at p.
	GestureStart(p core.Vec2)

	// GestureMove extends the current swipe to p.
	GestureMove(p core.Vec2)

	// GestureEnd finishes the current swipe.
	GestureEnd()
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one session.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under info.ID. Registering the same ID
// twice is a programming error and panics.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns the registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new session of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
