package slicer

// EventKind identifies something notable that happened during a round.
type EventKind int

const (
	EventSliced      EventKind = iota // An entity was sliced
	EventFruitMissed                  // A fruit fell off screen unsliced
	EventLifeLost                     // Lives decreased
	EventLifeGained                   // Lives increased
	EventCombo                        // A gesture ended with a combo
	EventSlowMotion                   // Slow motion started or was refreshed
	EventFaster                       // Spawn interval shrank
	EventRoundOver                    // Lives reached zero
	EventHighScore                    // The process high score was beaten
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventSliced:
		return "sliced"
	case EventFruitMissed:
		return "fruit-missed"
	case EventLifeLost:
		return "life-lost"
	case EventLifeGained:
		return "life-gained"
	case EventCombo:
		return "combo"
	case EventSlowMotion:
		return "slow-motion"
	case EventFaster:
		return "faster"
	case EventRoundOver:
		return "round-over"
	case EventHighScore:
		return "high-score"
	default:
		return "unknown"
	}
}

// Event is emitted by the round for the platform to log.
type Event struct {
	Kind   EventKind
	Tick   int
	Score  int    // Score after the event
	Value  int    // Kind-specific: combo size, lives, spawn interval
	Entity string // Entity description for EventSliced and EventFruitMissed
}

// Stats summarizes a round.
type Stats struct {
	Spawned       int
	FruitsSliced  int
	FruitsMissed  int
	HazardsSliced int
	BonusesSliced int
	BestCombo     int
}
