package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// Border
const (
	BorderMin = 0 // First index of a board
	BorderMax = 2 // Last index of a board
)

// Opponent returns the other player. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// IsPlayer reports whether m is X or O.
func (m PlayerMark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

func inBounds(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}
