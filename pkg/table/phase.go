package table

// GamePhase is the current phase of play at a table
type GamePhase string

// game phases, in cycle order
const (
	Waiting GamePhase = "Waiting"
	PreFlop GamePhase = "Pre-Flop"
	Flop    GamePhase = "Flop"
	Turn    GamePhase = "Turn"
	River   GamePhase = "River"
)

// communityCardCount returns how many community cards are on the board in this phase
func (p GamePhase) communityCardCount() int {
	switch p {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	}

	return 0
}
