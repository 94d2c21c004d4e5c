// Package slicer implements the fruit-slicing arcade game: entities launched
// on ballistic arcs, swipe collision, scoring, combos, lives, timed effects
// and a score-driven spawn ramp.
package slicer

import (
	"sync"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "slicer"

// GameTitle is the display name shown in listings and the HUD.
const GameTitle = "Slicer"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the game will use: the configured
// file or search path, then the difficulty preset.
func LoadConfig() (config.SlicerConfig, error) {
	cfg, err := config.LoadSlicer(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplySlicerPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts a Round to the platform. Every method holds the same lock, so
// ticks, gestures and snapshots never interleave even if the driver calls
// them from different goroutines.
type Game struct {
	mu      sync.Mutex
	high    *HighScore
	round   *Round
	runtime core.RuntimeConfig
	cfg     config.SlicerConfig
	cfgErr  error
}

// New creates a game that reports to the given process-wide high score.
func New(high *HighScore) *Game {
	if high == nil {
		high = NewHighScore()
	}
	return &Game{high: high}
}

// Register adds the game to the registry. All instances created by the
// registry share high.
func Register(high *HighScore) {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func() registry.Game {
		return New(high)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset loads configuration and starts a fresh round.
// An unusable config file falls back to the defaults; ConfigError reports why.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultSlicerConfig()
	}
	g.cfgErr = err

	round, err := NewRound(cfg, NewSimpleRNG(runtime.Seed), g.high)
	if err != nil {
		g.cfgErr = err
		cfg = config.DefaultSlicerConfig()
		// Defaults always validate
		round, _ = NewRound(cfg, NewSimpleRNG(runtime.Seed), g.high)
	}

	g.cfg = cfg
	g.round = round
}

// ConfigError returns the error that forced the last Reset onto defaults.
func (g *Game) ConfigError() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfgErr
}

// Step handles restart and pause requests, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) {
		g.round.Restart()
		return core.StepResult{State: g.stateLocked()}
	}
	if in.Has(core.ActionPause) {
		g.round.TogglePause()
	}

	g.round.Tick()
	return core.StepResult{State: g.stateLocked()}
}

// Restart resets the round.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round != nil {
		g.round.Restart()
	}
}

// Arena returns the play area size in pixels.
func (g *Game) Arena() (width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return 0, 0
	}
	return g.round.Arena()
}

// GestureStart begins a swipe at p.
func (g *Game) GestureStart(p core.Vec2) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round != nil {
		g.round.GestureStart(p)
	}
}

// GestureMove extends the swipe to p and slices what it crosses.
func (g *Game) GestureMove(p core.Vec2) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round != nil {
		g.round.GestureMove(p)
	}
}

// GestureEnd finishes the swipe.
func (g *Game) GestureEnd() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round != nil {
		g.round.GestureEnd()
	}
}

// Snapshot returns a copy of the visible round state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return Snapshot{HighScore: g.high.Best()}
	}
	return g.round.Snapshot()
}

// DrainEvents returns round events since the last call.
func (g *Game) DrainEvents() []Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return nil
	}
	return g.round.DrainEvents()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Score(),
		Lives:    g.round.Lives(),
		Best:     g.round.HighScore(),
		GameOver: g.round.GameOver(),
		Paused:   g.round.Paused(),
	}
}
