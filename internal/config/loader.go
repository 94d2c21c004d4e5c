package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "slicer.yaml"

// LoadSlicer loads the slicer configuration.
// Search order: customPath -> ~/.slicer/configs/slicer.yaml -> ./configs/slicer.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSlicer(customPath string) (SlicerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlicerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SlicerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSlicerYAML)
	if err != nil {
		return DefaultSlicerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(data []byte) (SlicerConfig, error) {
	cfg := DefaultSlicerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlicerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SlicerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slicer", "configs", filename)
}

// ApplySlicerPreset modifies the config based on a difficulty preset.
func ApplySlicerPreset(cfg *SlicerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Lives.Start = cfg.Lives.Max
		cfg.Difficulty.InitialInterval = 120
	case DifficultyHard:
		cfg.Lives.Start = 2
		cfg.Difficulty.InitialInterval = 70
		cfg.Difficulty.FirstThreshold = 30
	}
}
