package proto

import "ctchen222/Ultimate-Tic-Tac-Toe/internal/game"

// MoveRequest represents a move from the client: the position holds
// {bigRow, bigCol, smallRow, smallCol}.
type MoveRequest struct {
	Position []int `json:"position" validate:"required,len=4,dive,min=0,max=2"`
}

// Move converts a validated request into an engine move.
func (m *MoveRequest) Move() game.Move {
	return game.Move{
		BigRow:   m.Position[0],
		BigCol:   m.Position[1],
		SmallRow: m.Position[2],
		SmallCol: m.Position[3],
	}
}

// SubBoardState is the render view of one sub-board.
type SubBoardState struct {
	Cells   [3][3]game.PlayerMark `json:"cells"`
	Winner  game.PlayerMark       `json:"winner,omitempty"`
	WinLine *game.WinLine         `json:"win_line,omitempty"`
}

// GameState is everything a client needs to draw a frame and decide whether
// more input is accepted.
type GameState struct {
	ID            string              `json:"id"`
	Boards        [3][3]SubBoardState `json:"boards"`
	CurrentPlayer game.PlayerMark     `json:"current_player"`
	Winner        game.PlayerMark     `json:"winner,omitempty"`
	WinLine       *game.WinLine       `json:"win_line,omitempty"`
	Outcome       game.Outcome        `json:"outcome"`
	ForcedBoard   *[2]int             `json:"forced_board"`
	LegalBoards   [][2]int            `json:"legal_boards"`
	MoveCount     int                 `json:"move_count"`
	Status        string              `json:"status"`
}

// NewGameState snapshots g. The result shares nothing with the game.
func NewGameState(id string, g *game.Game) *GameState {
	state := &GameState{
		ID:            id,
		CurrentPlayer: g.CurrentPlayer(),
		Winner:        g.Winner(),
		Outcome:       g.Outcome(),
		LegalBoards:   make([][2]int, 0, 9),
		MoveCount:     g.MoveCount(),
		Status:        g.Status(),
	}

	for r := range [3]int{} {
		for c := range [3]int{} {
			b := g.Board(r, c)
			state.Boards[r][c] = SubBoardState{
				Cells:  b.Cells(),
				Winner: b.Winner(),
			}
			if line, ok := b.WinLine(); ok {
				state.Boards[r][c].WinLine = &line
			}
		}
	}

	if line, ok := g.WinLine(); ok {
		state.WinLine = &line
	}
	if pos, ok := g.ForcedBoard(); ok {
		state.ForcedBoard = &[2]int{pos.Row, pos.Col}
	}
	for _, pos := range g.LegalTargets() {
		state.LegalBoards = append(state.LegalBoards, [2]int{pos.Row, pos.Col})
	}

	return state
}
