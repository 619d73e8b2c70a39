package service

import (
	"context"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/game"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/hub"
	"ctchen222/Ultimate-Tic-Tac-Toe/pkg/proto"
)

//go:generate mockgen -destination=mocks/game_service_mock.go -package=mocks . GameService

// GameService defines the game operations exposed over HTTP.
type GameService interface {
	Create(ctx context.Context) (*proto.GameState, error)
	State(ctx context.Context, id string) (*proto.GameState, error)
	Move(ctx context.Context, id string, m game.Move) (*proto.GameState, error)
	Reset(ctx context.Context, id string) (*proto.GameState, error)
	Board(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

type gameService struct {
	hub *hub.Hub
}

// NewGameService creates a GameService backed by the in-memory hub.
func NewGameService(h *hub.Hub) GameService {
	return &gameService{hub: h}
}

// Create starts a new game.
func (s *gameService) Create(ctx context.Context) (*proto.GameState, error) {
	r, err := s.hub.Create(ctx)
	if err != nil {
		return nil, err
	}
	return r.State(ctx), nil
}

// State returns the current state of a game.
func (s *gameService) State(ctx context.Context, id string) (*proto.GameState, error) {
	r, err := s.hub.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.State(ctx), nil
}

// Move plays a move for whoever's turn it is.
func (s *gameService) Move(ctx context.Context, id string, m game.Move) (*proto.GameState, error) {
	r, err := s.hub.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Move(ctx, m)
}

// Reset starts a fresh game under the same ID.
func (s *gameService) Reset(ctx context.Context, id string) (*proto.GameState, error) {
	r, err := s.hub.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Reset(ctx), nil
}

// Board returns the text rendering of a game.
func (s *gameService) Board(ctx context.Context, id string) (string, error) {
	r, err := s.hub.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Board(ctx), nil
}

func (s *gameService) Delete(ctx context.Context, id string) error {
	return s.hub.Delete(ctx, id)
}
