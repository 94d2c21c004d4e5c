package config

// Ramp shortens the spawn interval as the score passes successive thresholds.
type Ramp struct {
	cfg       DifficultyConfig
	interval  int
	threshold int
}

// NewRamp creates a ramp at its initial interval and threshold.
func NewRamp(cfg DifficultyConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns the ramp to the start-of-round values.
func (r *Ramp) Reset() {
	r.interval = r.cfg.InitialInterval
	r.threshold = r.cfg.FirstThreshold
}

// Interval returns the current number of frames between spawns.
func (r *Ramp) Interval() int {
	return r.interval
}

// NextThreshold returns the score that triggers the next reduction.
func (r *Ramp) NextThreshold() int {
	return r.threshold
}

// Check applies at most one reduction when score has reached the threshold.
// A score that jumps past several thresholds still advances only one step;
// later calls catch up one threshold at a time.
// Returns true if the interval or threshold changed.
func (r *Ramp) Check(score int) bool {
	if !r.cfg.Enabled || score < r.threshold {
		return false
	}

	r.interval -= r.cfg.Step
	if r.interval < r.cfg.MinInterval {
		r.interval = r.cfg.MinInterval
	}
	r.threshold += r.cfg.ThresholdStep
	return true
}
