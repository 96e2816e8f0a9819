package score

// State is the game-mode lifecycle state.
type State uint8

const (
	StateInactive State = iota
	StateActive
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	State      State
	Score      float32
	Elapsed    float32
	SpawnTimer float32
	Multiplier float32
	// FinalScore is the score at the moment of the last hit.
	FinalScore int
}

// IsGameOver reports whether the last run ended in a hit.
func (s Snapshot) IsGameOver() bool {
	return s.State == StateGameOver
}
