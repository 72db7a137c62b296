package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/merinm488/game-store/internal/ai"
	"github.com/merinm488/game-store/internal/chess"
	"github.com/merinm488/game-store/internal/storage"
	"github.com/merinm488/game-store/internal/ws"
)

// OpponentKind says who plays the side the session's owner does not.
type OpponentKind string

const (
	OpponentAI    OpponentKind = "ai"
	OpponentLocal OpponentKind = "local"
)

// playerConn is the write half of a player's socket. *websocket.Conn
// satisfies it.
type playerConn interface {
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// GameSession owns one game. All game mutation happens under mu, including
// the engine search, so the game only ever sees a single writer. Connection
// bookkeeping has its own lock; lock order is connsMu before mu, never the
// reverse.
type GameSession struct {
	id         string
	opponent   OpponentKind
	humanColor chess.Color
	store      *storage.Store
	startedAt  time.Time

	mu       sync.Mutex
	game     *chess.Game
	engine   *ai.Engine
	recorded bool

	connsMu sync.Mutex
	conns   map[string]playerConn
}

func newGameSession(id string, game *chess.Game, opponent OpponentKind, humanColor chess.Color, engine *ai.Engine, store *storage.Store) *GameSession {
	return &GameSession{
		id:         id,
		opponent:   opponent,
		humanColor: humanColor,
		store:      store,
		startedAt:  time.Now(),
		game:       game,
		engine:     engine,
		conns:      make(map[string]playerConn),
	}
}

// start kicks off the engine when the loaded position already has it to
// move, as when the human takes black.
func (s *GameSession) start() {
	s.mu.Lock()
	engineTurn := s.engineToMove()
	s.mu.Unlock()
	if engineTurn {
		go s.playEngineMove()
	}
}

// engineToMove reports whether the engine owns the current turn. Callers
// must hold mu.
func (s *GameSession) engineToMove() bool {
	return s.opponent == OpponentAI && !s.game.GameOver() && s.game.Turn() != s.humanColor
}

func (s *GameSession) ID() string { return s.id }

func (s *GameSession) Opponent() OpponentKind { return s.opponent }

func (s *GameSession) HumanColor() chess.Color { return s.humanColor }

// State returns a snapshot of the game.
func (s *GameSession) State() chess.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

func (s *GameSession) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FEN()
}

// LegalMoves lists the legal moves from one square, empty when the square
// holds no piece of the side to move.
func (s *GameSession) LegalMoves(square chess.Square) []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves(square)
}

func (s *GameSession) Difficulty() (ai.Difficulty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return 0, fmt.Errorf("%w: game has no engine opponent", ErrInvalidInput)
	}
	return s.engine.Difficulty(), nil
}

// SetDifficulty changes the search depth for subsequent engine moves.
func (s *GameSession) SetDifficulty(d ai.Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return fmt.Errorf("%w: game has no engine opponent", ErrInvalidInput)
	}
	s.engine.SetDifficulty(d)
	return nil
}

// HandleMove applies the human's move, fans out the new state and, in an
// engine game, hands the turn to the engine in the background.
func (s *GameSession) HandleMove(payload ws.MovePayload) error {
	s.mu.Lock()
	if s.game.GameOver() {
		s.mu.Unlock()
		return ErrGameOver
	}
	if s.opponent == OpponentAI && s.game.Turn() != s.humanColor {
		s.mu.Unlock()
		return ErrNotYourTurn
	}
	m, ok := s.game.FindLegalMove(payload.From, payload.To, payload.Promotion)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, payload.From.Notation(), payload.To.Notation())
	}
	events := s.game.MakeMove(m)
	state := s.game.State()
	gameOver := s.game.GameOver()
	engineTurn := s.engineToMove()
	s.mu.Unlock()

	s.broadcast(state, events)
	if gameOver {
		s.recordResult()
	} else if engineTurn {
		go s.playEngineMove()
	}
	return nil
}

// HandleSelect feeds a board click through the game's selection flow. A
// click on a highlighted destination plays the move, so this mirrors
// HandleMove's guards and follow-up.
func (s *GameSession) HandleSelect(payload ws.SelectPayload) error {
	s.mu.Lock()
	if s.game.GameOver() {
		s.mu.Unlock()
		return ErrGameOver
	}
	if s.opponent == OpponentAI && s.game.Turn() != s.humanColor {
		s.mu.Unlock()
		return ErrNotYourTurn
	}
	events := s.game.SelectSquare(payload.Square)
	state := s.game.State()
	gameOver := s.game.GameOver()
	engineTurn := s.engineToMove()
	s.mu.Unlock()

	s.broadcast(state, events)
	if gameOver {
		s.recordResult()
	} else if engineTurn {
		go s.playEngineMove()
	}
	return nil
}

// playEngineMove runs the search and applies the engine's reply. It holds
// the game lock for the whole think so no other writer can interleave.
func (s *GameSession) playEngineMove() {
	s.mu.Lock()
	if s.engine == nil || !s.engineToMove() {
		s.mu.Unlock()
		return
	}
	m := s.engine.SelectMove(s.game)
	if m == nil {
		s.mu.Unlock()
		return
	}
	events := s.game.MakeMove(*m)
	state := s.game.State()
	gameOver := s.game.GameOver()
	s.mu.Unlock()

	s.broadcast(state, events)
	if gameOver {
		s.recordResult()
	}
}

// recordResult archives the finished game exactly once. The store write
// happens outside the game lock.
func (s *GameSession) recordResult() {
	if s.store == nil {
		return
	}
	s.mu.Lock()
	if s.recorded || !s.game.GameOver() {
		s.mu.Unlock()
		return
	}
	s.recorded = true
	rec := storage.GameRecord{
		ID:       s.id,
		Opponent: string(s.opponent),
		Winner:   string(s.game.Winner()),
		Reason:   endReason(s.game.State()),
		Moves:    len(s.game.MoveHistory()),
		Duration: time.Since(s.startedAt),
		FinalFEN: s.game.FEN(),
		PlayedAt: time.Now(),
	}
	if s.opponent == OpponentAI {
		rec.HumanColor = string(s.humanColor)
		if s.engine != nil {
			rec.Difficulty = s.engine.Difficulty().String()
		}
	}
	s.mu.Unlock()

	if err := s.store.RecordGame(rec); err != nil {
		log.Printf("failed to record game %s: %v", s.id, err)
	}
}

func endReason(state chess.GameState) string {
	switch {
	case state.IsCheckmate:
		return "checkmate"
	case state.IsStalemate:
		return "stalemate"
	case state.IsDraw:
		return chess.DrawReasonFiftyMove
	}
	return ""
}

// RegisterConnection attaches a socket to the session and sends it the
// current state. A player reconnecting over a second socket is rejected in
// favor of the existing one.
func (s *GameSession) RegisterConnection(playerID string, conn playerConn) error {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	if _, exists := s.conns[playerID]; exists {
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return fmt.Errorf("player %s is already connected", playerID)
	}
	s.conns[playerID] = conn
	// Snapshot after registering, still under connsMu: a concurrent move
	// lands either in this snapshot or in a broadcast queued behind it.
	return writeState(conn, s.State(), nil)
}

func (s *GameSession) UnregisterConnection(playerID string) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	delete(s.conns, playerID)
}

// broadcast fans the state and events out to every attached socket.
// Connections that fail to take the write are dropped.
func (s *GameSession) broadcast(state chess.GameState, events []chess.Event) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	for playerID, conn := range s.conns {
		if err := writeState(conn, state, events); err != nil {
			log.Printf("dropping connection for player %s on game %s: %v", playerID, s.id, err)
			conn.Close()
			delete(s.conns, playerID)
		}
	}
}

func writeState(conn playerConn, state chess.GameState, events []chess.Event) error {
	payload, err := json.Marshal(ws.GameStatePayload{State: state, Events: events})
	if err != nil {
		return err
	}
	return conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: payload,
	})
}
