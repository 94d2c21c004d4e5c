package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SlicerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultSlicerConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", fromYAML, DefaultSlicerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultSlicerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlicerConfig)
	}{
		{"zero arena", func(c *SlicerConfig) { c.Arena.Width = 0 }},
		{"inset too wide", func(c *SlicerConfig) { c.Spawn.Inset = 400 }},
		{"zero radius", func(c *SlicerConfig) { c.Spawn.Radius = 0 }},
		{"zero slow motion factor", func(c *SlicerConfig) { c.Physics.SlowMotionFactor = 0 }},
		{"negative weight", func(c *SlicerConfig) { c.Spawn.Weights.Hazard = -1 }},
		{"all weights zero", func(c *SlicerConfig) { c.Spawn.Weights = SpawnWeight{} }},
		{"duplicate tier points", func(c *SlicerConfig) { c.Scoring.FruitPoints = [3]int{5, 5, 15} }},
		{"start lives above max", func(c *SlicerConfig) { c.Lives.Start = 6 }},
		{"max lives above ceiling", func(c *SlicerConfig) { c.Lives.Max = 9 }},
		{"zero max lives", func(c *SlicerConfig) { c.Lives.Max = 0 }},
		{"zero combo min", func(c *SlicerConfig) { c.Scoring.ComboMin = 0 }},
		{"combo life below combo min", func(c *SlicerConfig) { c.Scoring.ComboLifeAt = 2 }},
		{"zero slow motion frames", func(c *SlicerConfig) { c.Effects.SlowMotionFrames = 0 }},
		{"zero message frames", func(c *SlicerConfig) { c.Effects.MessageFrames = 0 }},
		{"negative difficulty step", func(c *SlicerConfig) { c.Difficulty.Step = -10 }},
		{"zero interval", func(c *SlicerConfig) { c.Difficulty.InitialInterval = 0 }},
		{"zero threshold step", func(c *SlicerConfig) { c.Difficulty.ThresholdStep = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlicerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadSlicerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 0.25\nlives:\n  start: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlicer(path)
	if err != nil {
		t.Fatalf("LoadSlicer() error = %v", err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Lives.Start != 4 {
		t.Errorf("Lives.Start = %d, expected 4", cfg.Lives.Start)
	}
	// Missing fields keep defaults
	if cfg.Arena.Width != 800 {
		t.Errorf("Arena.Width = %d, expected default 800", cfg.Arena.Width)
	}
}

func TestLoadSlicerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlicer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSlicer() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  weights:\n    fruit: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSlicer(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSlicer() = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplySlicerPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantEnabled  bool
		wantLives    int
		wantInterval int
	}{
		{DifficultyEasy, true, 5, 120},
		{DifficultyNormal, true, 3, 100},
		{DifficultyHard, true, 2, 70},
		{DifficultyFixed, false, 3, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSlicerConfig()
			ApplySlicerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Lives.Start != tc.wantLives {
				t.Errorf("Lives.Start = %d, expected %d", cfg.Lives.Start, tc.wantLives)
			}
			if cfg.Difficulty.InitialInterval != tc.wantInterval {
				t.Errorf("InitialInterval = %d, expected %d", cfg.Difficulty.InitialInterval, tc.wantInterval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}
