package chess

// filterLegal keeps the pseudo-legal moves that do not leave the mover's own
// king attacked. Each candidate is applied on the live board (including the
// en passant pawn removal), checked, and fully reverted.
func (p *Position) filterLegal(mover Color, moves []Move) []Move {
	legal := make([]Move, 0, len(moves))
	for _, m := range moves {
		moving := p.Board[m.From.Y][m.From.X]
		captured := p.Board[m.To.Y][m.To.X]
		var epCaptured *Piece
		var epSquare Square

		p.Board[m.From.Y][m.From.X] = nil
		p.Board[m.To.Y][m.To.X] = moving
		if m.IsEnPassant {
			epSquare = Square{X: m.To.X, Y: m.From.Y}
			epCaptured = p.Board[epSquare.Y][epSquare.X]
			p.Board[epSquare.Y][epSquare.X] = nil
		}
		if moving.Type == King {
			p.setKing(mover, m.To)
		}

		if !p.InCheck(mover) {
			legal = append(legal, m)
		}

		if moving.Type == King {
			p.setKing(mover, m.From)
		}
		if epCaptured != nil {
			p.Board[epSquare.Y][epSquare.X] = epCaptured
		}
		p.Board[m.To.Y][m.To.X] = captured
		p.Board[m.From.Y][m.From.X] = moving
	}
	return legal
}

// ApplyMove mutates the position by one move: piece relocation (substituting
// the promoted piece), the castling rook move or en passant removal, castling
// rights bookkeeping, the en passant target, and the turn flip. The move must
// come from the legal move generator.
func (p *Position) ApplyMove(m Move) {
	piece := p.Board[m.From.Y][m.From.X]
	p.Board[m.From.Y][m.From.X] = nil
	placed := piece
	if m.Promotion != "" {
		placed = &Piece{Type: m.Promotion, Color: piece.Color}
	}
	p.Board[m.To.Y][m.To.X] = placed

	if m.IsEnPassant {
		p.Board[m.From.Y][m.To.X] = nil
	}
	switch m.Castle {
	case CastleKingSide:
		rook := p.Board[m.To.Y][7]
		p.Board[m.To.Y][7] = nil
		p.Board[m.To.Y][5] = rook
	case CastleQueenSide:
		rook := p.Board[m.To.Y][0]
		p.Board[m.To.Y][0] = nil
		p.Board[m.To.Y][3] = rook
	}
	if piece.Type == King {
		p.setKing(piece.Color, m.To)
	}

	p.updateCastlingRights(m, piece)

	if m.IsDoublePush {
		p.EnPassant = &Square{X: m.From.X, Y: (m.From.Y + m.To.Y) / 2}
	} else {
		p.EnPassant = nil
	}

	p.Turn = p.Turn.Opponent()
}

// updateCastlingRights revokes rights when the king moves, when a rook leaves
// its home corner, or when anything lands on a home corner (rook captured).
func (p *Position) updateCastlingRights(m Move, piece *Piece) {
	if piece.Type == King {
		if piece.Color == White {
			p.Castling.WhiteKingSide = false
			p.Castling.WhiteQueenSide = false
		} else {
			p.Castling.BlackKingSide = false
			p.Castling.BlackQueenSide = false
		}
	}
	if touches(m, 0, 7) {
		p.Castling.WhiteQueenSide = false
	}
	if touches(m, 7, 7) {
		p.Castling.WhiteKingSide = false
	}
	if touches(m, 0, 0) {
		p.Castling.BlackQueenSide = false
	}
	if touches(m, 7, 0) {
		p.Castling.BlackKingSide = false
	}
}

func touches(m Move, x, y int) bool {
	return (m.From.X == x && m.From.Y == y) || (m.To.X == x && m.To.Y == y)
}
