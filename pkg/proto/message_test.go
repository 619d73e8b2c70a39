package proto

import (
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/game"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/validator"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid move", body: `{"position":[0,1,2,0]}`},
		{name: "missing position", body: `{}`, wantErr: true},
		{name: "too few coordinates", body: `{"position":[0,1,2]}`, wantErr: true},
		{name: "too many coordinates", body: `{"position":[0,1,2,0,1]}`, wantErr: true},
		{name: "coordinate above range", body: `{"position":[0,3,2,0]}`, wantErr: true},
		{name: "negative coordinate", body: `{"position":[0,1,-1,0]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MoveRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := validator.GetValidator().Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, game.Move{BigRow: 0, BigCol: 1, SmallRow: 2, SmallCol: 0}, req.Move())
		})
	}
}

func TestNewGameState(t *testing.T) {
	g := game.NewGame()
	require.True(t, g.ApplyMove(1, 1, 0, 2))

	state := NewGameState("room-1", g)

	assert.Equal(t, "room-1", state.ID)
	assert.Equal(t, game.PlayerO, state.CurrentPlayer)
	assert.Equal(t, game.InProgress, state.Outcome)
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, game.PlayerX, state.Boards[1][1].Cells[0][2])
	require.NotNil(t, state.ForcedBoard)
	assert.Equal(t, [2]int{0, 2}, *state.ForcedBoard)
	assert.Equal(t, [][2]int{{0, 2}}, state.LegalBoards)
	assert.Nil(t, state.WinLine)
	assert.Equal(t, "Player O's turn, play in board (0,2)", state.Status)

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"forced_board":[0,2]`)
	assert.NotContains(t, string(data), `"win_line"`)
}
