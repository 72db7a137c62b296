// Package ws defines the WebSocket message envelope and payloads shared by
// the server and its clients.
package ws

import (
	"encoding/json"

	"github.com/merinm488/game-store/internal/chess"
)

// MessageType discriminates the messages travelling over a game socket.
type MessageType string

const (
	// Client to server.
	MessageTypeMove   MessageType = "move"
	MessageTypeSelect MessageType = "select"

	// Server to client.
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every WebSocket frame. Payload holds one of
// the payload structs below, keyed by Type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload asks the server to play a move. Promotion is empty unless the
// move pushes a pawn to the last rank; empty there means a queen.
type MovePayload struct {
	From      chess.Square    `json:"from"`
	To        chess.Square    `json:"to"`
	Promotion chess.PieceType `json:"promotion,omitempty"`
}

// SelectPayload reports a board click.
type SelectPayload struct {
	Square chess.Square `json:"square"`
}

// GameStatePayload carries a full state snapshot plus the events produced by
// the triggering change, in the order they occurred.
type GameStatePayload struct {
	State  chess.GameState `json:"state"`
	Events []chess.Event   `json:"events,omitempty"`
}

// ErrorPayload reports a rejected request. The socket stays open.
type ErrorPayload struct {
	Message string `json:"message"`
}
