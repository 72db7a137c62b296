package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/merinm488/game-store/internal/chess"
	"github.com/merinm488/game-store/internal/service"
)

// GameController serves the REST surface: game lifecycle, state and
// position queries, difficulty control and the results archive.
type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGame starts a new game. The body is optional; absent fields fall
// back to an AI opponent, the human playing white and the server's default
// difficulty.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var params service.CreateGameParams
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&params); err != nil {
			return fail(c, fmt.Errorf("%w: malformed request body", service.ErrInvalidInput))
		}
	}
	gameID, err := gc.gameService.CreateGame(params)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"gameId": gameID,
	})
}

// LoadGame starts a game from a FEN position supplied in the body.
func (gc *GameController) LoadGame(c *fiber.Ctx) error {
	var params service.CreateGameParams
	if err := c.BodyParser(&params); err != nil {
		return fail(c, fmt.Errorf("%w: malformed request body", service.ErrInvalidInput))
	}
	if params.FEN == "" {
		return fail(c, fmt.Errorf("%w: load requires a fen", service.ErrInvalidInput))
	}
	gameID, err := gc.gameService.CreateGame(params)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"gameId": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetState(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetFEN(c *fiber.Ctx) error {
	fen, err := gc.gameService.GetFEN(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"fen": fen,
	})
}

// GetMoves lists the legal destination squares for the piece on :square,
// with promotion variants collapsed to one entry.
func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), c.Params("square"))
	if err != nil {
		return fail(c, err)
	}
	targets := make([]chess.Square, 0, len(moves))
	seen := make(map[chess.Square]bool, len(moves))
	for _, m := range moves {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		targets = append(targets, m.To)
	}
	return c.JSON(fiber.Map{
		"moves": targets,
	})
}

func (gc *GameController) GetDifficulty(c *fiber.Ctx) error {
	difficulty, err := gc.gameService.GetDifficulty(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"difficulty": difficulty,
	})
}

func (gc *GameController) SetDifficulty(c *fiber.Ctx) error {
	var body struct {
		Difficulty string `json:"difficulty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fmt.Errorf("%w: malformed request body", service.ErrInvalidInput))
	}
	if err := gc.gameService.SetDifficulty(c.Params("gameId"), body.Difficulty); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"difficulty": body.Difficulty,
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.RemoveGame(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetRecentGames returns finished games, newest first. The limit query
// parameter caps the count and defaults to 20.
func (gc *GameController) GetRecentGames(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		return fail(c, fmt.Errorf("%w: limit must be positive", service.ErrInvalidInput))
	}
	records, err := gc.gameService.RecentGames(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"games": records,
	})
}

func (gc *GameController) GetStats(c *fiber.Ctx) error {
	stats, err := gc.gameService.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrIllegalMove):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotYourTurn), errors.Is(err, service.ErrGameOver):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
