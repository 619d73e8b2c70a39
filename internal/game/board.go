package game

// SubBoard is one of the nine 3x3 grids of the main board. Its zero value is
// an empty, undecided board.
type SubBoard struct {
	cells   [3][3]PlayerMark
	winner  PlayerMark
	winLine WinLine
}

// ApplyMove places player's mark at (row, col). It reports false, leaving the
// board untouched, when the cell is taken, the board already has a winner, the
// coordinates are out of range or player is not X or O.
func (b *SubBoard) ApplyMove(row, col int, player PlayerMark) bool {
	if !player.IsPlayer() || !inBounds(row, col) {
		return false
	}
	if b.winner != None || b.cells[row][col] != None {
		return false
	}

	b.cells[row][col] = player

	// Only the mover can have completed a line.
	if line, ok := findLine(b.Cell, player); ok {
		b.winner = player
		b.winLine = line
	}
	return true
}

// IsFull reports whether no empty cell remains.
func (b *SubBoard) IsFull() bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if b.cells[r][c] == None {
				return false
			}
		}
	}
	return true
}

// IsDecided reports whether the board has a winner or is full. A decided board
// can no longer be played in or be sent to.
func (b *SubBoard) IsDecided() bool {
	return b.winner != None || b.IsFull()
}

// Cell returns the mark at (row, col), or None when out of range.
func (b *SubBoard) Cell(row, col int) PlayerMark {
	if !inBounds(row, col) {
		return None
	}
	return b.cells[row][col]
}

// Cells returns a copy of the grid in row-major order.
func (b *SubBoard) Cells() [3][3]PlayerMark {
	return b.cells
}

func (b *SubBoard) Winner() PlayerMark {
	return b.winner
}

// WinLine returns the line that won the board. ok is false while the board has
// no winner.
func (b *SubBoard) WinLine() (line WinLine, ok bool) {
	if b.winner == None {
		return WinLine{}, false
	}
	return b.winLine, true
}
