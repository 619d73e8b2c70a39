package game

import (
	"errors"
	"fmt"
)

type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	Drawn      Outcome = "draw"
)

var (
	ErrGameOver     = errors.New("game already finished")
	ErrOutOfBounds  = errors.New("coordinates out of bounds")
	ErrWrongBoard   = errors.New("must play in the forced board")
	ErrBoardDecided = errors.New("board already decided")
	ErrCellOccupied = errors.New("cell already occupied")
)

// BoardPos addresses one sub-board on the main board.
type BoardPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a full move request: the sub-board and the cell inside it.
type Move struct {
	BigRow   int `json:"big_row"`
	BigCol   int `json:"big_col"`
	SmallRow int `json:"small_row"`
	SmallCol int `json:"small_col"`
}

// Game is an Ultimate Tic-Tac-Toe match: a 3x3 grid of sub-boards where the
// cell just played picks the sub-board the opponent must play in next.
//
// A Game is not safe for concurrent use.
type Game struct {
	boards        [3][3]SubBoard
	currentPlayer PlayerMark
	winner        PlayerMark
	winLine       WinLine
	draw          bool
	forced        *BoardPos
	moves         int
}

// NewGame returns an empty game with X to move and free choice of board.
func NewGame() *Game {
	return &Game{
		currentPlayer: PlayerX,
		winner:        None,
	}
}

// ApplyMove plays the current player's mark at cell (smallRow, smallCol) of
// sub-board (bigRow, bigCol). It reports false and leaves the game unchanged
// when the move is illegal.
func (g *Game) ApplyMove(bigRow, bigCol, smallRow, smallCol int) bool {
	return g.Play(bigRow, bigCol, smallRow, smallCol) == nil
}

// Play is ApplyMove with the reason for a rejection.
func (g *Game) Play(bigRow, bigCol, smallRow, smallCol int) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if !inBounds(bigRow, bigCol) || !inBounds(smallRow, smallCol) {
		return ErrOutOfBounds
	}
	if g.forced != nil && (g.forced.Row != bigRow || g.forced.Col != bigCol) {
		return fmt.Errorf("%w (%d,%d)", ErrWrongBoard, g.forced.Row, g.forced.Col)
	}

	board := &g.boards[bigRow][bigCol]
	if board.IsDecided() {
		return ErrBoardDecided
	}
	if !board.ApplyMove(smallRow, smallCol, g.currentPlayer) {
		return ErrCellOccupied
	}
	g.moves++

	if line, ok := findLine(g.boardWinner, g.currentPlayer); ok {
		g.winner = g.currentPlayer
		g.winLine = line
	}

	next := &g.boards[smallRow][smallCol]
	if next.IsDecided() {
		g.forced = nil
	} else {
		g.forced = &BoardPos{Row: smallRow, Col: smallCol}
	}

	if g.winner == None && g.allDecided() {
		g.draw = true
	}

	g.currentPlayer = g.currentPlayer.Opponent()
	return nil
}

// IsLegalTarget reports whether the current player may play in sub-board
// (bigRow, bigCol) right now.
func (g *Game) IsLegalTarget(bigRow, bigCol int) bool {
	if g.IsOver() || !inBounds(bigRow, bigCol) {
		return false
	}
	if g.forced != nil && (g.forced.Row != bigRow || g.forced.Col != bigCol) {
		return false
	}
	return !g.boards[bigRow][bigCol].IsDecided()
}

// LegalTargets lists the sub-boards the current player may play in, row-major.
func (g *Game) LegalTargets() []BoardPos {
	var targets []BoardPos
	for r := range [3]int{} {
		for c := range [3]int{} {
			if g.IsLegalTarget(r, c) {
				targets = append(targets, BoardPos{Row: r, Col: c})
			}
		}
	}
	return targets
}

// LegalMoves lists every move the current player may make.
func (g *Game) LegalMoves() []Move {
	var moves []Move
	for _, pos := range g.LegalTargets() {
		board := &g.boards[pos.Row][pos.Col]
		for r := range [3]int{} {
			for c := range [3]int{} {
				if board.Cell(r, c) == None {
					moves = append(moves, Move{BigRow: pos.Row, BigCol: pos.Col, SmallRow: r, SmallCol: c})
				}
			}
		}
	}
	return moves
}

// Board returns a copy of sub-board (row, col). The copy cannot alter the game.
func (g *Game) Board(row, col int) SubBoard {
	if !inBounds(row, col) {
		return SubBoard{}
	}
	return g.boards[row][col]
}

func (g *Game) CurrentPlayer() PlayerMark {
	return g.currentPlayer
}

// Winner returns the main-board winner, or None.
func (g *Game) Winner() PlayerMark {
	return g.winner
}

// WinLine returns the main-board line of sub-boards that won the game.
func (g *Game) WinLine() (line WinLine, ok bool) {
	if g.winner == None {
		return WinLine{}, false
	}
	return g.winLine, true
}

// ForcedBoard returns the sub-board the current player must play in. ok is
// false when the player may choose any undecided board.
func (g *Game) ForcedBoard() (pos BoardPos, ok bool) {
	if g.forced == nil {
		return BoardPos{}, false
	}
	return *g.forced, true
}

// IsDraw reports whether every sub-board is decided without a main-board line.
func (g *Game) IsDraw() bool {
	return g.draw
}

func (g *Game) IsOver() bool {
	return g.winner != None || g.draw
}

func (g *Game) Outcome() Outcome {
	switch {
	case g.winner != None:
		return Won
	case g.draw:
		return Drawn
	default:
		return InProgress
	}
}

// MoveCount returns the number of accepted moves.
func (g *Game) MoveCount() int {
	return g.moves
}

// Status returns a one-line, human readable summary of whose turn it is or how
// the game ended.
func (g *Game) Status() string {
	switch g.Outcome() {
	case Won:
		return fmt.Sprintf("Player %s wins the big board!", g.winner)
	case Drawn:
		return "The game is a draw"
	}
	if g.forced != nil {
		return fmt.Sprintf("Player %s's turn, play in board (%d,%d)", g.currentPlayer, g.forced.Row, g.forced.Col)
	}
	return fmt.Sprintf("Player %s's turn, play anywhere", g.currentPlayer)
}

// boardWinner reads the main board as a grid of sub-board winners. A drawn
// sub-board counts for neither player.
func (g *Game) boardWinner(row, col int) PlayerMark {
	return g.boards[row][col].Winner()
}

func (g *Game) allDecided() bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if !g.boards[r][c].IsDecided() {
				return false
			}
		}
	}
	return true
}
