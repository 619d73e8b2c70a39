package controller

import (
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/api/response"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/api/service"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/hub"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/room"
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/validator"
	"ctchen222/Ultimate-Tic-Tac-Toe/pkg/proto"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameController handles game-related HTTP requests.
type GameController struct {
	gameService service.GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// Create handles the new game endpoint.
func (gc *GameController) Create(c *gin.Context) {
	state, err := gc.gameService.Create(c.Request.Context())
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponseWithCode(c, http.StatusCreated, state)
}

// Get returns the state of a game.
func (gc *GameController) Get(c *gin.Context) {
	state, err := gc.gameService.State(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, state)
}

// Move applies a move for the player whose turn it is.
func (gc *GameController) Move(c *gin.Context) {
	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := gc.gameService.Move(c.Request.Context(), c.Param("id"), req.Move())
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, state)
}

// Reset starts a fresh game under the same ID.
func (gc *GameController) Reset(c *gin.Context) {
	state, err := gc.gameService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, state)
}

// Delete removes a game.
func (gc *GameController) Delete(c *gin.Context) {
	if err := gc.gameService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponseContent(c, "game deleted")
}

// Board returns the text rendering of a game.
func (gc *GameController) Board(c *gin.Context) {
	board, err := gc.gameService.Board(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err)
		return
	}

	c.String(http.StatusOK, board+"\n")
}

func (gc *GameController) fail(c *gin.Context, err error) {
	e := errorFor(err)
	if e.Code >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	response.AbortWithError(c, e)
}

// errorFor maps service errors to HTTP errors.
func errorFor(err error) response.Error {
	switch {
	case errors.Is(err, hub.ErrRoomNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, hub.ErrTooManyRooms):
		return response.NewError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, room.ErrIllegalMove):
		return response.NewError(http.StatusConflict, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, "internal server error")
	}
}
