// Package chess implements the board, rules and game state for standard
// chess: legal move generation, check and attack detection, special moves
// (castling, en passant, promotion), terminal state detection and FEN
// import/export. The package owns a single authoritative position per Game;
// search code operates on clones obtained via Position.Clone.
package chess

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// notation returns the algebraic letter for the piece type, empty for pawns.
func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is an occupant of a board square. Pieces are immutable values; board
// mutation moves pointers between squares, promotion replaces the piece.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}
