package chess

// EventType enumerates the state transitions a single applied move can
// produce. Surrounding systems (renderer, audio, result recording) drive
// themselves entirely off the drained event list.
type EventType string

const (
	EventCapture    EventType = "capture"
	EventPromotion  EventType = "promotion"
	EventMove       EventType = "move"
	EventTurnChange EventType = "turnChange"
	EventCheck      EventType = "check"
	EventCheckmate  EventType = "checkmate"
	EventStalemate  EventType = "stalemate"
	EventDraw       EventType = "draw"
)

// DrawReasonFiftyMove is the reason carried by a draw event triggered by the
// fifty-move rule.
const DrawReasonFiftyMove = "fifty-move"

// Event describes one thing that happened during move application. MakeMove
// returns events in a fixed order: capture, then promotion, then (after all
// state recomputation) move and turnChange, then check or checkmate or
// stalemate or draw according to the recomputed flags.
type Event struct {
	Type EventType `json:"type"`
	// Color is the side the event concerns: the owner of a captured piece,
	// the promoting side, the mover for move, the side now to move for
	// turnChange and check-family events.
	Color    Color     `json:"color,omitempty"`
	Piece    PieceType `json:"piece,omitempty"`
	Square   *Square   `json:"square,omitempty"`
	Move     *Move     `json:"move,omitempty"`
	Notation string    `json:"notation,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}
