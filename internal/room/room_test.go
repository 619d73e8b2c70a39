package room

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/game"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestRoom(t *testing.T) (*Room, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	metrics, err := NewMetrics(provider.Meter("room-test"))
	require.NoError(t, err)
	return NewRoom("room-1", metrics), reader
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestRoom_Move(t *testing.T) {
	r, reader := newTestRoom(t)
	ctx := context.Background()

	state, err := r.Move(ctx, game.Move{BigRow: 0, BigCol: 0, SmallRow: 0, SmallCol: 0})
	require.NoError(t, err)

	assert.Equal(t, "room-1", state.ID)
	assert.Equal(t, game.PlayerX, state.Boards[0][0].Cells[0][0])
	assert.Equal(t, game.PlayerO, state.CurrentPlayer)
	require.NotNil(t, state.ForcedBoard)
	assert.Equal(t, [2]int{0, 0}, *state.ForcedBoard)
	assert.Equal(t, int64(1), counterTotal(t, reader, "uttt.moves.accepted"))
}

func TestRoom_IllegalMove(t *testing.T) {
	r, reader := newTestRoom(t)
	ctx := context.Background()

	_, err := r.Move(ctx, game.Move{BigRow: 1, BigCol: 1, SmallRow: 1, SmallCol: 1})
	require.NoError(t, err)

	_, err = r.Move(ctx, game.Move{BigRow: 1, BigCol: 1, SmallRow: 1, SmallCol: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMove))
	assert.True(t, errors.Is(err, game.ErrCellOccupied))

	_, err = r.Move(ctx, game.Move{BigRow: 0, BigCol: 0, SmallRow: 0, SmallCol: 0})
	assert.True(t, errors.Is(err, game.ErrWrongBoard))

	state := r.State(ctx)
	assert.Equal(t, game.PlayerO, state.CurrentPlayer)
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, int64(2), counterTotal(t, reader, "uttt.moves.rejected"))
}

func TestRoom_FinishedGame(t *testing.T) {
	r, reader := newTestRoom(t)
	ctx := context.Background()

	moves := [][4]int{
		{0, 0, 0, 0}, {0, 0, 1, 1}, {1, 1, 0, 2}, {0, 2, 2, 2},
		{2, 2, 1, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 1, 1, 1},
		{1, 1, 1, 2}, {1, 2, 2, 2}, {2, 2, 1, 1}, {1, 1, 0, 0},
		{0, 0, 0, 2}, {0, 2, 1, 1}, {1, 1, 2, 2}, {2, 2, 2, 2},
		{2, 2, 1, 2},
	}
	var last error
	for _, m := range moves {
		_, last = r.Move(ctx, game.Move{BigRow: m[0], BigCol: m[1], SmallRow: m[2], SmallCol: m[3]})
		require.NoError(t, last)
	}

	state := r.State(ctx)
	assert.Equal(t, game.Won, state.Outcome)
	assert.Equal(t, game.PlayerX, state.Winner)
	require.NotNil(t, state.WinLine)
	assert.Equal(t, game.WinLine{Kind: game.LineDiagonal, Index: 0}, *state.WinLine)
	assert.Empty(t, state.LegalBoards)
	assert.Equal(t, int64(1), counterTotal(t, reader, "uttt.games.finished"))

	_, err := r.Move(ctx, game.Move{BigRow: 1, BigCol: 2, SmallRow: 0, SmallCol: 0})
	assert.True(t, errors.Is(err, game.ErrGameOver))
}

func TestRoom_Reset(t *testing.T) {
	r, _ := newTestRoom(t)
	ctx := context.Background()

	_, err := r.Move(ctx, game.Move{BigRow: 2, BigCol: 2, SmallRow: 0, SmallCol: 1})
	require.NoError(t, err)
	before := r.LastActive()

	state := r.Reset(ctx)
	assert.Equal(t, "room-1", state.ID)
	assert.Equal(t, 0, state.MoveCount)
	assert.Equal(t, game.PlayerX, state.CurrentPlayer)
	assert.Nil(t, state.ForcedBoard)
	assert.Len(t, state.LegalBoards, 9)
	assert.False(t, r.LastActive().Before(before))
	assert.Contains(t, r.Board(ctx), "Player X's turn, play anywhere")
}

func TestRoom_ConcurrentMovesAreSerialized(t *testing.T) {
	r, _ := newTestRoom(t)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Move(ctx, game.Move{BigRow: 1, BigCol: 1, SmallRow: 1, SmallCol: 1}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	state := r.State(ctx)
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, game.PlayerO, state.CurrentPlayer)
}

func TestRoom_ReadsRefreshLastActive(t *testing.T) {
	r, _ := newTestRoom(t)
	ctx := context.Background()
	stale := time.Now().Add(-time.Hour)

	r.lastActive = stale
	r.State(ctx)
	assert.True(t, r.LastActive().After(stale), "State did not refresh LastActive")

	r.lastActive = stale
	r.Board(ctx)
	assert.True(t, r.LastActive().After(stale), "Board did not refresh LastActive")
}
