package chess

// LegalMoves returns the legal moves for the piece on sq. An empty,
// out-of-bounds or opponent-owned square yields an empty result, not an
// error.
func (p *Position) LegalMoves(sq Square) []Move {
	piece := p.PieceAt(sq)
	if piece == nil || piece.Color != p.Turn {
		return nil
	}
	return p.filterLegal(piece.Color, p.pseudoMoves(sq, piece))
}

// AllLegalMoves returns every legal move for the given side, enumerated in
// row-major board order so that equal-score choices downstream are
// deterministic.
func (p *Position) AllLegalMoves(c Color) []Move {
	var moves []Move
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := p.Board[y][x]
			if piece != nil && piece.Color == c {
				moves = append(moves, p.filterLegal(c, p.pseudoMoves(Square{X: x, Y: y}, piece))...)
			}
		}
	}
	return moves
}

// HasLegalMoves reports whether the given side has at least one legal move,
// stopping at the first piece that can move.
func (p *Position) HasLegalMoves(c Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := p.Board[y][x]
			if piece != nil && piece.Color == c {
				if len(p.filterLegal(c, p.pseudoMoves(Square{X: x, Y: y}, piece))) > 0 {
					return true
				}
			}
		}
	}
	return false
}

func (p *Position) pseudoMoves(from Square, piece *Piece) []Move {
	switch piece.Type {
	case Pawn:
		return p.pawnMoves(from, piece)
	case Knight:
		return p.offsetMoves(from, piece, knightDirs)
	case Bishop:
		return p.slidingMoves(from, piece, bishopDirs)
	case Rook:
		return p.slidingMoves(from, piece, rookDirs)
	case Queen:
		return append(p.slidingMoves(from, piece, bishopDirs), p.slidingMoves(from, piece, rookDirs)...)
	case King:
		return p.kingMoves(from, piece)
	}
	return nil
}

// slidingMoves walks each direction until the board edge, an own piece (stop
// before) or an enemy piece (include, then stop).
func (p *Position) slidingMoves(from Square, piece *Piece, dirs []Square) []Move {
	var moves []Move
	for _, dir := range dirs {
		target := Square{X: from.X + dir.X, Y: from.Y + dir.Y}
		for target.InBounds() {
			occ := p.Board[target.Y][target.X]
			if occ == nil {
				moves = append(moves, Move{From: from, To: target})
			} else {
				if occ.Color != piece.Color {
					moves = append(moves, Move{From: from, To: target, Capture: occ.Type})
				}
				break
			}
			target = Square{X: target.X + dir.X, Y: target.Y + dir.Y}
		}
	}
	return moves
}

func (p *Position) offsetMoves(from Square, piece *Piece, dirs []Square) []Move {
	var moves []Move
	for _, dir := range dirs {
		target := Square{X: from.X + dir.X, Y: from.Y + dir.Y}
		if !target.InBounds() {
			continue
		}
		occ := p.Board[target.Y][target.X]
		if occ == nil {
			moves = append(moves, Move{From: from, To: target})
		} else if occ.Color != piece.Color {
			moves = append(moves, Move{From: from, To: target, Capture: occ.Type})
		}
	}
	return moves
}

func (p *Position) pawnMoves(from Square, piece *Piece) []Move {
	var moves []Move
	dir := -1
	startRank := 6
	if piece.Color == Black {
		dir = 1
		startRank = 1
	}
	one := Square{X: from.X, Y: from.Y + dir}
	if one.InBounds() && p.Board[one.Y][one.X] == nil {
		moves = append(moves, expandPromotions(Move{From: from, To: one}, piece.Color)...)
		if from.Y == startRank {
			two := Square{X: from.X, Y: from.Y + 2*dir}
			if p.Board[two.Y][two.X] == nil {
				moves = append(moves, Move{From: from, To: two, IsDoublePush: true})
			}
		}
	}
	for _, dx := range []int{-1, 1} {
		target := Square{X: from.X + dx, Y: from.Y + dir}
		if !target.InBounds() {
			continue
		}
		if occ := p.Board[target.Y][target.X]; occ != nil && occ.Color != piece.Color {
			moves = append(moves, expandPromotions(Move{From: from, To: target, Capture: occ.Type}, piece.Color)...)
		}
		// The en passant target belongs to the side to move; it expires as
		// soon as any reply is made.
		if p.EnPassant != nil && *p.EnPassant == target && piece.Color == p.Turn {
			moves = append(moves, Move{From: from, To: target, Capture: Pawn, IsEnPassant: true})
		}
	}
	return moves
}

// expandPromotions turns a pawn move onto the back rank into the four
// promotion variants, queen first.
func expandPromotions(m Move, c Color) []Move {
	lastRank := 0
	if c == Black {
		lastRank = 7
	}
	if m.To.Y != lastRank {
		return []Move{m}
	}
	variants := make([]Move, 0, 4)
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		v := m
		v.Promotion = pt
		variants = append(variants, v)
	}
	return variants
}

func (p *Position) kingMoves(from Square, piece *Piece) []Move {
	moves := p.offsetMoves(from, piece, kingDirs)
	return append(moves, p.castlingMoves(from, piece.Color)...)
}

// castlingMoves offers castling when the right is still held, the squares
// between king and rook are empty, and neither the king's square nor any
// square it crosses or lands on is attacked.
func (p *Position) castlingMoves(from Square, c Color) []Move {
	home := 7
	kingSide, queenSide := p.Castling.WhiteKingSide, p.Castling.WhiteQueenSide
	if c == Black {
		home = 0
		kingSide, queenSide = p.Castling.BlackKingSide, p.Castling.BlackQueenSide
	}
	kingFrom := Square{X: 4, Y: home}
	if from != kingFrom {
		return nil
	}
	enemy := c.Opponent()
	if p.IsSquareAttacked(kingFrom, enemy) {
		return nil
	}
	var moves []Move
	if kingSide && p.isRookHome(7, home, c) &&
		p.Board[home][5] == nil && p.Board[home][6] == nil &&
		!p.IsSquareAttacked(Square{X: 5, Y: home}, enemy) &&
		!p.IsSquareAttacked(Square{X: 6, Y: home}, enemy) {
		moves = append(moves, Move{From: kingFrom, To: Square{X: 6, Y: home}, Castle: CastleKingSide})
	}
	if queenSide && p.isRookHome(0, home, c) &&
		p.Board[home][1] == nil && p.Board[home][2] == nil && p.Board[home][3] == nil &&
		!p.IsSquareAttacked(Square{X: 3, Y: home}, enemy) &&
		!p.IsSquareAttacked(Square{X: 2, Y: home}, enemy) {
		moves = append(moves, Move{From: kingFrom, To: Square{X: 2, Y: home}, Castle: CastleQueenSide})
	}
	return moves
}

func (p *Position) isRookHome(x, y int, c Color) bool {
	occ := p.Board[y][x]
	return occ != nil && occ.Type == Rook && occ.Color == c
}
