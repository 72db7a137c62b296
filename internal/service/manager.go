package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/merinm488/game-store/internal/ai"
	"github.com/merinm488/game-store/internal/chess"
	"github.com/merinm488/game-store/internal/storage"
)

// GameManager tracks live sessions by ID.
type GameManager struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
	store    *storage.Store
}

func NewGameManager(store *storage.Store) *GameManager {
	return &GameManager{
		sessions: make(map[string]*GameSession),
		store:    store,
	}
}

// Create registers a session for the given game and starts it. engine may
// be nil for a local two-player game.
func (gm *GameManager) Create(game *chess.Game, opponent OpponentKind, humanColor chess.Color, engine *ai.Engine) *GameSession {
	session := newGameSession(uuid.New().String(), game, opponent, humanColor, engine, gm.store)
	gm.mu.Lock()
	gm.sessions[session.ID()] = session
	gm.mu.Unlock()
	session.start()
	return session
}

func (gm *GameManager) Get(gameID string) (*GameSession, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// Remove drops a session from the registry. Attached sockets keep their
// session alive until they disconnect; new lookups fail.
func (gm *GameManager) Remove(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.sessions, gameID)
}
