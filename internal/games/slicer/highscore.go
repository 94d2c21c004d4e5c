package slicer

import "sync"

// HighScore is the best round score seen during this process.
// One instance is shared by every round the process runs, including
// concurrent SSH sessions, so access is synchronized.
type HighScore struct {
	mu   sync.Mutex
	best int
}

// NewHighScore creates a high score starting at 0.
func NewHighScore() *HighScore {
	return &HighScore{}
}

// Best returns the current high score.
func (h *HighScore) Best() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.best
}

// Record replaces the high score if score exceeds it.
// Returns true if the high score changed.
func (h *HighScore) Record(score int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if score <= h.best {
		return false
	}
	h.best = score
	return true
}
