package hub

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Run removes idle rooms every interval until ctx is cancelled.
func (h *Hub) Run(ctx context.Context, interval time.Duration) {
	if h.idleTTL <= 0 || interval <= 0 {
		slog.InfoContext(ctx, "idle room sweeper disabled")
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "idle room sweeper started", "interval", interval, "idle_ttl", h.idleTTL)
	for {
		select {
		case <-ctx.Done():
			slog.Info("idle room sweeper stopping")
			return
		case now := <-ticker.C:
			h.sweep(ctx, now)
		}
	}
}

// sweep closes every room idle since before now minus the idle TTL and
// returns how many were closed.
func (h *Hub) sweep(ctx context.Context, now time.Time) int {
	ctx, span := tracer.Start(ctx, "hub.sweep")
	defer span.End()

	cutoff := now.Add(-h.idleTTL)

	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, r := range h.rooms {
		if r.LastActive().Before(cutoff) {
			delete(h.rooms, id)
			removed++
			slog.InfoContext(ctx, "room expired", "room.id", id)
		}
	}

	span.SetAttributes(
		attribute.Int("rooms.removed", removed),
		attribute.Int("rooms.count", len(h.rooms)),
	)
	return removed
}
