// Package config provides YAML-based game configuration loading and
// difficulty management for the slicer.
package config

import (
	"errors"
	"fmt"
)

// SlicerConfig contains all configuration for a slicing round.
type SlicerConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Lives      LivesConfig      `yaml:"lives"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the play area in pixel space.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // px/frame² added to vertical velocity
	SlowMotionFactor float64 `yaml:"slow_motion_factor"` // speed factor while slow motion is active
}

// SpawnConfig defines where and how entities are launched.
type SpawnConfig struct {
	Inset        int         `yaml:"inset"`          // horizontal margin kept free at both edges
	BelowOffset  int         `yaml:"below_offset"`   // launch height below the bottom edge
	MinUpSpeed   float64     `yaml:"min_up_speed"`   // slowest upward launch speed
	UpSpeedRange float64     `yaml:"up_speed_range"` // added on top of MinUpSpeed
	SideSpeed    float64     `yaml:"side_speed"`     // horizontal speed drawn from [-SideSpeed, SideSpeed)
	Radius       int         `yaml:"radius"`
	Weights      SpawnWeight `yaml:"weights"`
}

// SpawnWeight holds relative weights for variant selection.
type SpawnWeight struct {
	Fruit  int `yaml:"fruit"`
	Hazard int `yaml:"hazard"`
	Bonus  int `yaml:"bonus"`
}

// Total returns the sum of all weights.
func (w SpawnWeight) Total() int {
	return w.Fruit + w.Hazard + w.Bonus
}

// ScoringConfig defines point values and combo rules.
type ScoringConfig struct {
	FruitPoints      [3]int `yaml:"fruit_points"` // low, mid, high tier
	SlowMotionPoints int    `yaml:"slow_motion_points"`
	ComboMin         int    `yaml:"combo_min"`     // fruits in one swipe needed for a combo
	ComboLifeAt      int    `yaml:"combo_life_at"` // fruits in one swipe that also grant a life
}

// LivesConfig defines the life budget.
type LivesConfig struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"`
}

// EffectsConfig defines timed effect durations in frames.
type EffectsConfig struct {
	SlowMotionFrames int `yaml:"slow_motion_frames"`
	MessageFrames    int `yaml:"message_frames"`
}

// DifficultyConfig defines the spawn-interval ramp.
type DifficultyConfig struct {
	Enabled         bool `yaml:"enabled"`
	InitialInterval int  `yaml:"initial_interval"` // frames between spawns at round start
	Step            int  `yaml:"step"`             // interval reduction per threshold
	MinInterval     int  `yaml:"min_interval"`
	FirstThreshold  int  `yaml:"first_threshold"` // score of the first reduction
	ThresholdStep   int  `yaml:"threshold_step"`  // score between reductions
}

// MaxLives is the hard ceiling on lives; lives.max may lower it but never raise it.
const MaxLives = 5

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid slicer config")

// Validate checks the construction-time invariants of a config.
func (c SlicerConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return invalid("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if 2*c.Spawn.Inset >= c.Arena.Width {
		return invalid("spawn inset %d leaves no room in width %d", c.Spawn.Inset, c.Arena.Width)
	}
	if c.Spawn.Radius <= 0 {
		return invalid("radius must be positive, got %d", c.Spawn.Radius)
	}
	if c.Physics.SlowMotionFactor <= 0 {
		return invalid("slow_motion_factor must be positive, got %v", c.Physics.SlowMotionFactor)
	}
	w := c.Spawn.Weights
	if w.Fruit < 0 || w.Hazard < 0 || w.Bonus < 0 {
		return invalid("spawn weights must be non-negative, got %+v", w)
	}
	if w.Total() <= 0 {
		return invalid("spawn weights must not all be zero")
	}
	p := c.Scoring.FruitPoints
	if p[0] == p[1] || p[1] == p[2] || p[0] == p[2] {
		return invalid("fruit tiers need distinct points, got %v", p)
	}
	if c.Scoring.ComboMin < 1 {
		return invalid("combo_min must be at least 1, got %d", c.Scoring.ComboMin)
	}
	if c.Scoring.ComboLifeAt < c.Scoring.ComboMin {
		return invalid("combo_life_at %d is below combo_min %d", c.Scoring.ComboLifeAt, c.Scoring.ComboMin)
	}
	if c.Lives.Max < 1 || c.Lives.Max > MaxLives {
		return invalid("lives max %d must be within [1, %d]", c.Lives.Max, MaxLives)
	}
	if c.Lives.Start <= 0 || c.Lives.Start > c.Lives.Max {
		return invalid("lives start %d must be within [1, %d]", c.Lives.Start, c.Lives.Max)
	}
	if c.Effects.SlowMotionFrames <= 0 || c.Effects.MessageFrames <= 0 {
		return invalid("effect durations must be positive, got %+v", c.Effects)
	}
	if c.Difficulty.InitialInterval <= 0 || c.Difficulty.MinInterval <= 0 {
		return invalid("spawn intervals must be positive")
	}
	if c.Difficulty.Step < 0 {
		return invalid("difficulty step must not be negative, got %d", c.Difficulty.Step)
	}
	if c.Difficulty.Enabled && c.Difficulty.ThresholdStep <= 0 {
		return invalid("threshold_step must be positive when the ramp is enabled")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
