package game

import "fmt"

// LineKind names the geometry of a completed line.
type LineKind string

const (
	LineRow      LineKind = "row"
	LineColumn   LineKind = "column"
	LineDiagonal LineKind = "diagonal"
)

// WinLine describes the line that produced a win. For LineDiagonal, Index 0 runs
// top-left to bottom-right and Index 1 runs top-right to bottom-left.
type WinLine struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

func (l WinLine) String() string {
	return fmt.Sprintf("%s(%d)", l.Kind, l.Index)
}

// findLine looks for a completed line of mark on a 3x3 grid read through at.
// Rows are checked first, then columns, then the main diagonal and finally the
// anti-diagonal; the first match is reported.
func findLine(at func(row, col int) PlayerMark, mark PlayerMark) (WinLine, bool) {
	// Check rows
	for i := range [3]int{} {
		if at(i, 0) == mark && at(i, 1) == mark && at(i, 2) == mark {
			return WinLine{Kind: LineRow, Index: i}, true
		}
	}

	// Check columns
	for i := range [3]int{} {
		if at(0, i) == mark && at(1, i) == mark && at(2, i) == mark {
			return WinLine{Kind: LineColumn, Index: i}, true
		}
	}

	// Check diagonals
	if at(0, 0) == mark && at(1, 1) == mark && at(2, 2) == mark {
		return WinLine{Kind: LineDiagonal, Index: 0}, true
	}
	if at(0, 2) == mark && at(1, 1) == mark && at(2, 0) == mark {
		return WinLine{Kind: LineDiagonal, Index: 1}, true
	}

	return WinLine{}, false
}
