package config

import (
	_ "embed"
)

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// DefaultSlicerConfig returns the default configuration.
// It mirrors defaults/slicer.yaml and is used when the embedded file cannot be parsed.
func DefaultSlicerConfig() SlicerConfig {
	return SlicerConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			SlowMotionFactor: 0.5,
		},
		Spawn: SpawnConfig{
			Inset:        50,
			BelowOffset:  10,
			MinUpSpeed:   15,
			UpSpeedRange: 5,
			SideSpeed:    3,
			Radius:       20,
			Weights: SpawnWeight{
				Fruit:  70,
				Hazard: 15,
				Bonus:  15,
			},
		},
		Scoring: ScoringConfig{
			FruitPoints:      [3]int{5, 10, 15},
			SlowMotionPoints: 5,
			ComboMin:         3,
			ComboLifeAt:      5,
		},
		Lives: LivesConfig{
			Start: 3,
			Max:   5,
		},
		Effects: EffectsConfig{
			SlowMotionFrames: 150, // ~2.5 seconds at 60 FPS
			MessageFrames:    60,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialInterval: 100,
			Step:            10,
			MinInterval:     20,
			FirstThreshold:  50,
			ThresholdStep:   50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSlicerYAML
}
