package game

// Stage represents the street of a hand
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case Showdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// Next returns the following stage. Showdown is terminal.
func (s Stage) Next() Stage {
	if s >= Showdown {
		return Showdown
	}
	return s + 1
}

// CommunityCards returns how many community cards are revealed when
// entering the stage
func (s Stage) CommunityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}
