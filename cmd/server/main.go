package main

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/api/controller"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/api/service"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/config"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/hub"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/logger"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/server"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/telemetry"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Create hub
	h, err := hub.NewHub(cfg.Games.Max, cfg.Games.IdleTTL, otel.Meter("room"))
	if err != nil {
		log.Fatalf("failed to create hub: %v", err)
	}
	go h.Run(ctx, cfg.Games.SweepInterval)

	gameService := service.NewGameService(h)
	gameController := controller.NewGameController(gameService)

	// Create the Gin-based server
	srv := server.NewServer(gameController, cfg.WebRoot)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
