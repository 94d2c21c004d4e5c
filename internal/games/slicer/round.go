package slicer

import (
	"fmt"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// RoundState is the lifecycle state of a round.
type RoundState int

const (
	StateRunning RoundState = iota
	StateGameOver
)

// String returns the state name.
func (s RoundState) String() string {
	if s == StateGameOver {
		return "gameover"
	}
	return "running"
}

// Round owns one play session: the active entities, score, lives, timed
// effects and the spawn ramp. It is not safe for concurrent use; Game
// serializes access.
type Round struct {
	cfg     config.SlicerConfig
	high    *HighScore
	spawner *Spawner
	ramp    *config.Ramp
	swipe   *SwipeTracker

	entities []*Entity

	state        RoundState
	paused       bool
	score        int
	lives        int
	slowMotion   int // frames left, 0 = inactive
	message      string
	messageTimer int // frames left for message
	tick         int
	stats        Stats
	events       []Event
}

// NewRound creates a running round. high is the process-wide high score the
// round reports to when it ends.
func NewRound(cfg config.SlicerConfig, rng Rand, high *HighScore) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spawner, err := NewSpawner(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if high == nil {
		high = NewHighScore()
	}

	r := &Round{
		cfg:     cfg,
		high:    high,
		spawner: spawner,
		ramp:    config.NewRamp(cfg.Difficulty),
		swipe:   NewSwipeTracker(),
	}
	r.Restart()
	return r, nil
}

// Restart resets the round to its initial state and sets it running.
// Calling it on a running round is a full reset too. An abandoned round's
// score still counts toward the high score.
func (r *Round) Restart() {
	if r.state == StateRunning && r.score > 0 && r.high.Record(r.score) {
		r.emit(EventHighScore, r.score, "")
	}

	clear(r.entities)
	r.entities = r.entities[:0]
	r.swipe.Reset()
	r.spawner.Reset()
	r.ramp.Reset()

	r.state = StateRunning
	r.paused = false
	r.score = 0
	r.lives = r.cfg.Lives.Start
	r.slowMotion = 0
	r.message = ""
	r.messageTimer = 0
	r.tick = 0
	r.stats = Stats{}
}

// TogglePause pauses or resumes a running round.
func (r *Round) TogglePause() {
	if r.state != StateRunning {
		return
	}
	r.paused = !r.paused
	if r.paused {
		r.swipe.Reset()
	}
}

// Tick advances a running round by one frame. Paused and finished rounds
// are left untouched.
func (r *Round) Tick() {
	if r.state != StateRunning || r.paused {
		return
	}
	r.tick++

	if e := r.spawner.MaybeSpawn(r.ramp.Interval()); e != nil {
		r.entities = append(r.entities, e)
		r.stats.Spawned++
	}

	f := r.SpeedFactor()
	for _, e := range r.entities {
		e.Update(f)
	}

	r.removeOffScreen()

	if r.slowMotion > 0 {
		r.slowMotion--
	}

	if r.messageTimer > 0 {
		r.messageTimer--
		if r.messageTimer == 0 {
			r.message = ""
		}
	}

	if r.ramp.Check(r.score) {
		r.emit(EventFaster, r.ramp.Interval(), "")
	}
}

// removeOffScreen compacts the entity slice in place, dropping sliced
// entities and those that left the play area. Each unsliced fruit that
// leaves costs a life.
func (r *Round) removeOffScreen() {
	w, h := r.cfg.Arena.Width, r.cfg.Arena.Height

	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.Sliced() {
			continue
		}
		if !e.IsOffScreen(w, h) {
			kept = append(kept, e)
			continue
		}
		if e.Kind == KindFruit {
			r.stats.FruitsMissed++
			r.emit(EventFruitMissed, 0, e.String())
			r.loseLife()
		}
	}
	clear(r.entities[len(kept):])
	r.entities = kept
}

// SpeedFactor returns the integration multiplier for this frame.
func (r *Round) SpeedFactor() float64 {
	if r.slowMotion > 0 {
		return r.cfg.Physics.SlowMotionFactor
	}
	return 1.0
}

// loseLife removes one life and ends the round at zero.
func (r *Round) loseLife() {
	if r.state != StateRunning {
		return
	}

	r.lives--
	r.emit(EventLifeLost, r.lives, "")
	if r.lives <= 0 {
		r.lives = 0
		r.endRound()
	}
}

// gainLife adds one life up to the configured maximum.
func (r *Round) gainLife() {
	if r.lives < min(r.cfg.Lives.Max, config.MaxLives) {
		r.lives++
		r.emit(EventLifeGained, r.lives, "")
	}
}

// endRound moves to GameOver and reports the score to the high score.
func (r *Round) endRound() {
	r.state = StateGameOver
	r.swipe.Reset()
	r.emit(EventRoundOver, r.lives, "")
	if r.high.Record(r.score) {
		r.emit(EventHighScore, r.score, "")
	}
}

// showMessage replaces the transient message.
func (r *Round) showMessage(msg string) {
	r.message = msg
	r.messageTimer = r.cfg.Effects.MessageFrames
}

func (r *Round) emit(kind EventKind, value int, entity string) {
	r.events = append(r.events, Event{
		Kind:   kind,
		Tick:   r.tick,
		Score:  r.score,
		Value:  value,
		Entity: entity,
	})
}

// DrainEvents returns the events since the last call and forgets them.
func (r *Round) DrainEvents() []Event {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}

// State returns the lifecycle state.
func (r *Round) State() RoundState {
	return r.state
}

// GameOver reports whether the round has ended.
func (r *Round) GameOver() bool {
	return r.state == StateGameOver
}

// Paused reports whether the round is paused.
func (r *Round) Paused() bool {
	return r.paused
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// Message returns the transient message, or "" when none is shown.
func (r *Round) Message() string {
	return r.message
}

// SlowMotion returns the frames of slow motion left.
func (r *Round) SlowMotion() int {
	return r.slowMotion
}

// SpawnInterval returns the current frames between spawns.
func (r *Round) SpawnInterval() int {
	return r.ramp.Interval()
}

// NextThreshold returns the score of the next difficulty step.
func (r *Round) NextThreshold() int {
	return r.ramp.NextThreshold()
}

// HighScore returns the process-wide high score.
func (r *Round) HighScore() int {
	return r.high.Best()
}

// Stats returns the round statistics so far.
func (r *Round) Stats() Stats {
	return r.stats
}

// Arena returns the play area size in pixels.
func (r *Round) Arena() (width, height int) {
	return r.cfg.Arena.Width, r.cfg.Arena.Height
}

// Trail returns the points of the gesture in progress.
func (r *Round) Trail() []core.Vec2 {
	return r.swipe.Trail()
}
