package room

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/game"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the move and game counters shared by all rooms.
type Metrics struct {
	movesAccepted metric.Int64Counter
	movesRejected metric.Int64Counter
	gamesFinished metric.Int64Counter
}

// NewMetrics registers the room instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	accepted, err := meter.Int64Counter("uttt.moves.accepted",
		metric.WithDescription("Moves applied to a game"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves.accepted counter: %w", err)
	}
	rejected, err := meter.Int64Counter("uttt.moves.rejected",
		metric.WithDescription("Moves rejected by the rules engine"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves.rejected counter: %w", err)
	}
	finished, err := meter.Int64Counter("uttt.games.finished",
		metric.WithDescription("Games that reached a terminal outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create games.finished counter: %w", err)
	}

	return &Metrics{
		movesAccepted: accepted,
		movesRejected: rejected,
		gamesFinished: finished,
	}, nil
}

func (m *Metrics) moveAccepted(ctx context.Context) {
	m.movesAccepted.Add(ctx, 1)
}

func (m *Metrics) moveRejected(ctx context.Context, err error) {
	m.movesRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectReason(err))))
}

func (m *Metrics) gameFinished(ctx context.Context, outcome game.Outcome) {
	m.gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

// rejectReason maps an engine error to a low-cardinality label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, game.ErrWrongBoard):
		return "wrong_board"
	case errors.Is(err, game.ErrBoardDecided):
		return "board_decided"
	case errors.Is(err, game.ErrCellOccupied):
		return "cell_occupied"
	default:
		return "unknown"
	}
}
