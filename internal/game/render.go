package game

import "strings"

const boardSeparator = "-------+-------+------\n"

// String renders the main board as a 9x9 text grid followed by the status
// line. A sub-board with a winner is drawn filled with the winner's mark.
func (g *Game) String() string {
	var sb strings.Builder
	for bigRow := range [3]int{} {
		if bigRow > 0 {
			sb.WriteString(boardSeparator)
		}
		for smallRow := range [3]int{} {
			for bigCol := range [3]int{} {
				if bigCol > 0 {
					sb.WriteString(" |")
				}
				board := &g.boards[bigRow][bigCol]
				for smallCol := range [3]int{} {
					mark := board.Cell(smallRow, smallCol)
					if w := board.Winner(); w != None {
						mark = w
					}
					sb.WriteByte(' ')
					sb.WriteString(cellString(mark))
				}
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(g.Status())
	return sb.String()
}

func cellString(m PlayerMark) string {
	if m == None {
		return "."
	}
	return string(m)
}
