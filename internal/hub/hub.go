package hub

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/room"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

var (
	ErrRoomNotFound = errors.New("game not found")
	ErrTooManyRooms = errors.New("too many active games")
)

// Hub manages all the rooms.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]*room.Room
	maxRooms int
	idleTTL  time.Duration
	metrics  *room.Metrics
}

// NewHub creates a hub holding at most maxRooms rooms. Rooms idle for longer
// than idleTTL are removed by Run. Instruments are registered on meter.
func NewHub(maxRooms int, idleTTL time.Duration, meter metric.Meter) (*Hub, error) {
	metrics, err := room.NewMetrics(meter)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		rooms:    make(map[string]*room.Room),
		maxRooms: maxRooms,
		idleTTL:  idleTTL,
		metrics:  metrics,
	}

	_, err = meter.Int64ObservableGauge("uttt.games.active",
		metric.WithDescription("Games currently hosted"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(h.Count()))
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create games.active gauge: %w", err)
	}

	return h, nil
}

// Create opens a room with a fresh game.
func (h *Hub) Create(ctx context.Context) (*room.Room, error) {
	ctx, span := tracer.Start(ctx, "hub.Create")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxRooms > 0 && len(h.rooms) >= h.maxRooms {
		slog.WarnContext(ctx, "refusing new game, hub is full", "rooms.count", len(h.rooms), "rooms.max", h.maxRooms)
		span.RecordError(ErrTooManyRooms)
		span.SetStatus(codes.Error, "Hub is full")
		return nil, ErrTooManyRooms
	}

	roomID := uuid.New().String()
	r := room.NewRoom(roomID, h.metrics)
	h.rooms[roomID] = r
	span.SetAttributes(attribute.String("room.id", roomID))

	slog.InfoContext(ctx, "room created", "room.id", roomID, "rooms.count", len(h.rooms))
	return r, nil
}

// Get returns the room with the given ID.
func (h *Hub) Get(ctx context.Context, id string) (*room.Room, error) {
	_, span := tracer.Start(ctx, "hub.Get", trace.WithAttributes(
		attribute.String("room.id", id),
	))
	defer span.End()

	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.rooms[id]
	if !ok {
		span.SetStatus(codes.Error, "Room not found")
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return r, nil
}

// Delete closes the room with the given ID.
func (h *Hub) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "hub.Delete", trace.WithAttributes(
		attribute.String("room.id", id),
	))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[id]; !ok {
		span.SetStatus(codes.Error, "Room not found")
		return fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	delete(h.rooms, id)

	slog.InfoContext(ctx, "room closed", "room.id", id, "rooms.count", len(h.rooms))
	return nil
}

// Count returns the number of hosted rooms.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
