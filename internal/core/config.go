package core

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows, help line included
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; equal seeds replay identically
}

// Normalized fills unset fields: a zero seed takes newSeed(), a non-positive
// tick rate becomes DefaultTickRate.
func (c RuntimeConfig) Normalized(newSeed func() int64) RuntimeConfig {
	if c.Seed == 0 && newSeed != nil {
		c.Seed = newSeed()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the per-tick summary the platform reads for logs and exit.
type GameState struct {
	Score    int
	Lives    int
	Best     int // process high score
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
