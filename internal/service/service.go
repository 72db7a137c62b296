// Package service owns live game sessions: it applies human moves, runs the
// engine opponent, fans state out to websockets and archives finished games.
package service

import (
	"fmt"

	"github.com/merinm488/game-store/internal/ai"
	"github.com/merinm488/game-store/internal/chess"
	"github.com/merinm488/game-store/internal/storage"
	"github.com/merinm488/game-store/internal/ws"
)

// CreateGameParams are the client-supplied options for a new game. Zero
// values fall back to an engine opponent, the server's default difficulty,
// the white pieces and the standard starting position.
type CreateGameParams struct {
	Opponent   string `json:"opponent"`
	Difficulty string `json:"difficulty"`
	Color      string `json:"color"`
	FEN        string `json:"fen"`
}

// GameService is the facade the transport layer talks to.
type GameService struct {
	manager           *GameManager
	store             *storage.Store
	defaultDifficulty ai.Difficulty
}

func NewGameService(manager *GameManager, store *storage.Store, defaultDifficulty ai.Difficulty) *GameService {
	return &GameService{
		manager:           manager,
		store:             store,
		defaultDifficulty: defaultDifficulty,
	}
}

// CreateGame builds a session from params and returns its ID.
func (gs *GameService) CreateGame(params CreateGameParams) (string, error) {
	opponent := OpponentAI
	switch params.Opponent {
	case "", string(OpponentAI):
	case string(OpponentLocal):
		opponent = OpponentLocal
	default:
		return "", fmt.Errorf("%w: unknown opponent %q", ErrInvalidInput, params.Opponent)
	}

	humanColor := chess.White
	switch params.Color {
	case "", string(chess.White):
	case string(chess.Black):
		humanColor = chess.Black
	default:
		return "", fmt.Errorf("%w: unknown color %q", ErrInvalidInput, params.Color)
	}

	var engine *ai.Engine
	if opponent == OpponentAI {
		difficulty := gs.defaultDifficulty
		if params.Difficulty != "" {
			var err error
			difficulty, err = ai.ParseDifficulty(params.Difficulty)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		engine = ai.NewEngine(difficulty)
	}

	game := chess.NewGame()
	if params.FEN != "" {
		var err error
		game, err = chess.NewGameFromFEN(params.FEN)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	session := gs.manager.Create(game, opponent, humanColor, engine)
	return session.ID(), nil
}

func (gs *GameService) GetState(gameID string) (chess.GameState, error) {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return chess.GameState{}, err
	}
	return session.State(), nil
}

func (gs *GameService) GetFEN(gameID string) (string, error) {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return "", err
	}
	return session.FEN(), nil
}

// LegalMoves lists the legal moves from a square given in algebraic
// notation, like "e2". An empty list is a normal answer, not an error.
func (gs *GameService) LegalMoves(gameID, square string) ([]chess.Move, error) {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return nil, err
	}
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return session.LegalMoves(sq), nil
}

func (gs *GameService) HandleMove(gameID string, payload ws.MovePayload) error {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return err
	}
	return session.HandleMove(payload)
}

func (gs *GameService) HandleSelect(gameID string, payload ws.SelectPayload) error {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return err
	}
	return session.HandleSelect(payload)
}

func (gs *GameService) GetDifficulty(gameID string) (string, error) {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return "", err
	}
	d, err := session.Difficulty()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func (gs *GameService) SetDifficulty(gameID, difficulty string) error {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return err
	}
	d, err := ai.ParseDifficulty(difficulty)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return session.SetDifficulty(d)
}

func (gs *GameService) RemoveGame(gameID string) error {
	if _, err := gs.manager.Get(gameID); err != nil {
		return err
	}
	gs.manager.Remove(gameID)
	return nil
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn playerConn) error {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	session, err := gs.manager.Get(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID)
}

// RecentGames returns the newest archived games. With archiving disabled it
// returns an empty list.
func (gs *GameService) RecentGames(limit int) ([]storage.GameRecord, error) {
	if gs.store == nil {
		return []storage.GameRecord{}, nil
	}
	return gs.store.RecentGames(limit)
}

// Stats returns the running statistics across all archived games.
func (gs *GameService) Stats() (*storage.Stats, error) {
	if gs.store == nil {
		return storage.NewStats(), nil
	}
	return gs.store.Stats()
}
