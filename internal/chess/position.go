package chess

// CastlingRights tracks the four independent castling permissions. A right is
// revoked permanently when the king moves, when the rook leaves its home
// square, or when the rook is captured there.
type CastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// Position is the movable core of a game: the piece grid plus the state move
// generation depends on. It carries no clocks, history or terminal flags;
// those belong to Game. Search code clones a Position per candidate move and
// never touches the original.
type Position struct {
	Board     [8][8]*Piece
	Turn      Color
	Castling  CastlingRights
	EnPassant *Square

	whiteKing Square
	blackKing Square
}

// NewPosition returns the standard starting position with White to move.
func NewPosition() *Position {
	p := &Position{
		Turn: White,
		Castling: CastlingRights{
			WhiteKingSide:  true,
			WhiteQueenSide: true,
			BlackKingSide:  true,
			BlackQueenSide: true,
		},
	}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, pt := range backRank {
		p.Board[0][x] = &Piece{Type: pt, Color: Black}
		p.Board[7][x] = &Piece{Type: pt, Color: White}
	}
	for x := 0; x < 8; x++ {
		p.Board[1][x] = &Piece{Type: Pawn, Color: Black}
		p.Board[6][x] = &Piece{Type: Pawn, Color: White}
	}
	p.blackKing = Square{X: 4, Y: 0}
	p.whiteKing = Square{X: 4, Y: 7}
	return p
}

// Clone returns an independent copy. The piece grid is copied; the immutable
// Piece values behind it are shared.
func (p *Position) Clone() *Position {
	clone := *p
	if p.EnPassant != nil {
		ep := *p.EnPassant
		clone.EnPassant = &ep
	}
	return &clone
}

// PieceAt returns the piece on sq, or nil for an empty or out-of-bounds
// square.
func (p *Position) PieceAt(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return p.Board[sq.Y][sq.X]
}

// King returns the square of the given side's king.
func (p *Position) King(c Color) Square {
	if c == White {
		return p.whiteKing
	}
	return p.blackKing
}

func (p *Position) setKing(c Color, sq Square) {
	if c == White {
		p.whiteKing = sq
	} else {
		p.blackKing = sq
	}
}

// InCheck reports whether the given side's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsSquareAttacked(p.King(c), c.Opponent())
}
