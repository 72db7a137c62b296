package chess

// CastleSide marks a castling move.
type CastleSide string

const (
	CastleKingSide  CastleSide = "kingside"
	CastleQueenSide CastleSide = "queenside"
)

// Move is an immutable value describing one move. Legality is a property of
// generation: moves produced by LegalMoves or AllLegalMoves may be applied,
// anything else is a caller bug and is not re-validated.
//
// Capture holds the captured piece type ("" when quiet); for en passant it is
// set to Pawn explicitly since the destination square is empty. Promotion is
// set on each of the four expanded promotion variants.
type Move struct {
	From         Square     `json:"from"`
	To           Square     `json:"to"`
	Capture      PieceType  `json:"capture,omitempty"`
	Promotion    PieceType  `json:"promotion,omitempty"`
	IsDoublePush bool       `json:"isDoublePush,omitempty"`
	IsEnPassant  bool       `json:"isEnPassant,omitempty"`
	Castle       CastleSide `json:"castle,omitempty"`
}

// MoveRecord is one entry of a game's move history.
type MoveRecord struct {
	Notation string `json:"notation"`
	From     Square `json:"from"`
	To       Square `json:"to"`
	Color    Color  `json:"color"`
}
