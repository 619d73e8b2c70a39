package room

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/game"
	"ctchen222/Ultimate-Tic-Tac-Toe/pkg/proto"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("room")

// ErrIllegalMove wraps every engine rejection returned by Move.
var ErrIllegalMove = errors.New("illegal move")

// Room hosts a single hot-seat game. Every operation holds the room lock, so
// at most one mutation is in flight at a time.
type Room struct {
	ID         string
	mu         sync.Mutex
	game       *game.Game
	metrics    *Metrics
	lastActive time.Time
}

// NewRoom creates a room with a fresh game.
func NewRoom(id string, metrics *Metrics) *Room {
	return &Room{
		ID:         id,
		game:       game.NewGame(),
		metrics:    metrics,
		lastActive: time.Now(),
	}
}

// Move applies m for the player whose turn it is and returns the new state.
func (r *Room) Move(ctx context.Context, m game.Move) (*proto.GameState, error) {
	ctx, span := tracer.Start(ctx, "room.Move", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("move.big_row", m.BigRow),
		attribute.Int("move.big_col", m.BigCol),
		attribute.Int("move.small_row", m.SmallRow),
		attribute.Int("move.small_col", m.SmallCol),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.game.CurrentPlayer()
	span.SetAttributes(attribute.String("move.player", string(player)))

	if err := r.game.Play(m.BigRow, m.BigCol, m.SmallRow, m.SmallCol); err != nil {
		slog.WarnContext(ctx, "rejected move", "room.id", r.ID, "player", player, "move", m, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal move")
		r.metrics.moveRejected(ctx, err)
		return nil, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	r.lastActive = time.Now()
	r.metrics.moveAccepted(ctx)

	if r.game.IsOver() {
		outcome := r.game.Outcome()
		slog.InfoContext(ctx, "game finished", "room.id", r.ID, "outcome", outcome, "winner", r.game.Winner(), "moves", r.game.MoveCount())
		span.SetAttributes(attribute.String("game.outcome", string(outcome)))
		r.metrics.gameFinished(ctx, outcome)
	}

	return proto.NewGameState(r.ID, r.game), nil
}

// State returns a snapshot of the current game. Polling counts as activity.
func (r *Room) State(ctx context.Context) *proto.GameState {
	_, span := tracer.Start(ctx, "room.State", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()
	return proto.NewGameState(r.ID, r.game)
}

// Reset replaces the game with a fresh one under the same room ID.
func (r *Room) Reset(ctx context.Context) *proto.GameState {
	ctx, span := tracer.Start(ctx, "room.Reset", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.game = game.NewGame()
	r.lastActive = time.Now()
	slog.InfoContext(ctx, "game reset", "room.id", r.ID)

	return proto.NewGameState(r.ID, r.game)
}

// Board renders the game as text. Like State, it counts as activity.
func (r *Room) Board(ctx context.Context) string {
	_, span := tracer.Start(ctx, "room.Board", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()
	return r.game.String()
}

// LastActive returns when the room was created, last changed or last read.
func (r *Room) LastActive() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}
