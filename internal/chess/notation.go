package chess

import "fmt"

// moveNotation renders a move in the simplified algebraic style the clients
// display: piece letter, a file specifier for pawn captures, "x" on
// captures, the destination square, and "=Q" style promotion suffixes.
// Moves by two identical pieces that could reach the same square are not
// disambiguated. Check and mate suffixes are appended by MakeMove once the
// resulting position is known. Must be called before the move is applied.
func (p *Position) moveNotation(m Move) string {
	switch m.Castle {
	case CastleKingSide:
		return "O-O"
	case CastleQueenSide:
		return "O-O-O"
	}
	piece := p.Board[m.From.Y][m.From.X]
	prefix := piece.Type.notation()
	specifier := ""
	if piece.Type == Pawn && m.From.X != m.To.X {
		specifier = m.From.fileNotation()
	}
	capture := ""
	if m.Capture != "" {
		capture = "x"
	}
	promotion := ""
	if m.Promotion != "" {
		promotion = "=" + m.Promotion.notation()
	}
	return fmt.Sprintf("%s%s%s%s%s", prefix, specifier, capture, m.To.Notation(), promotion)
}
