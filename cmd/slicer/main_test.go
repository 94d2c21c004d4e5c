package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagResolved = false
		flagConfig = ""
		flagDifficulty = ""
		slicer.SetConfigPath("")
		slicer.SetDifficultyPreset("")
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestListShowsSlicer(t *testing.T) {
	out := execute(t, "list")
	if !strings.Contains(out, "slicer") || !strings.Contains(out, "Slicer") {
		t.Errorf("list output = %q, expected slicer entry", out)
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out := execute(t, "config")
	if out != string(config.DefaultYAML()) {
		t.Error("config output differs from embedded defaults")
	}
}

func TestConfigResolvedAppliesPreset(t *testing.T) {
	out := execute(t, "config", "--resolved", "--difficulty", "fixed")

	var cfg config.SlicerConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("resolved config is not YAML: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}
	if cfg.Arena.Width != 800 {
		t.Errorf("Arena.Width = %d, expected 800", cfg.Arena.Width)
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "brutal"
	t.Cleanup(func() { flagDifficulty = "" })

	if err := applyGameFlags(); err == nil {
		t.Error("applyGameFlags() expected error for unknown difficulty")
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"bogus", "bogus"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
