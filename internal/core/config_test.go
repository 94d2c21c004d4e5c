package core

import "testing"

func TestRuntimeConfigNormalized(t *testing.T) {
	seed := func() int64 { return 42 }

	tests := []struct {
		name     string
		in       RuntimeConfig
		wantSeed int64
		wantRate int
	}{
		{"fills both", RuntimeConfig{}, 42, DefaultTickRate},
		{"keeps seed", RuntimeConfig{Seed: 7, TickRate: 30}, 7, 30},
		{"negative rate", RuntimeConfig{Seed: 7, TickRate: -1}, 7, DefaultTickRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized(seed)
			if got.Seed != tt.wantSeed || got.TickRate != tt.wantRate {
				t.Errorf("Normalized() = seed %d rate %d, expected seed %d rate %d",
					got.Seed, got.TickRate, tt.wantSeed, tt.wantRate)
			}
		})
	}
}

func TestRuntimeConfigNormalizedNilSeed(t *testing.T) {
	got := RuntimeConfig{}.Normalized(nil)
	if got.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 without a seed source", got.Seed)
	}
}
