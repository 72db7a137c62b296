package ai

import "github.com/merinm488/game-store/internal/chess"

// Material values in centipawns.
func pieceValue(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 20000
	}
	return 0
}

// Piece-square tables, laid out with Black's home rank in row 0 to match the
// board's orientation. Values are for White; Black reads the table mirrored
// vertically.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

func pieceSquareBonus(piece *chess.Piece, x, y int) int {
	if piece.Color == chess.Black {
		y = 7 - y
	}
	switch piece.Type {
	case chess.Pawn:
		return pawnTable[y][x]
	case chess.Knight:
		return knightTable[y][x]
	case chess.Bishop:
		return bishopTable[y][x]
	case chess.Rook:
		return rookTable[y][x]
	case chess.Queen:
		return queenTable[y][x]
	case chess.King:
		return kingTable[y][x]
	}
	return 0
}

// evaluate scores the position in centipawns from White's perspective. It
// combines material, piece placement, control of the extended center, a
// rough king shelter term and raw mobility. A mirrored position scores the
// exact negation, so the starting position is dead even.
func evaluate(p *chess.Position) int {
	score := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := p.Board[y][x]
			if piece == nil {
				continue
			}
			value := pieceValue(piece.Type) + pieceSquareBonus(piece, x, y)
			if piece.Color == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	score += centerControl(p)
	score += kingSafety(p)
	score += 2 * (len(p.AllLegalMoves(chess.White)) - len(p.AllLegalMoves(chess.Black)))
	return score
}

// centerControl rewards attacks on the four center squares and, more
// lightly, on the ring around them. Occupation earns nothing on its own;
// a defended center square is what counts.
func centerControl(p *chess.Position) int {
	score := 0
	for y := 2; y <= 5; y++ {
		for x := 2; x <= 5; x++ {
			sq := chess.Square{X: x, Y: y}
			bonus := 3
			if (x == 3 || x == 4) && (y == 3 || y == 4) {
				bonus = 10
			}
			if p.IsSquareAttacked(sq, chess.White) {
				score += bonus
			}
			if p.IsSquareAttacked(sq, chess.Black) {
				score -= bonus
			}
		}
	}
	return score
}

// kingSafety rewards a king tucked behind its home corner and penalizes one
// stuck in the middle of its home rank. A king off the home rank scores
// nothing either way.
func kingSafety(p *chess.Position) int {
	score := 0
	if king := p.King(chess.White); king.Y == 7 {
		switch {
		case king.X >= 6 || king.X <= 2:
			score += 25
		case king.X == 3 || king.X == 4:
			score -= 30
		}
	}
	if king := p.King(chess.Black); king.Y == 0 {
		switch {
		case king.X >= 6 || king.X <= 2:
			score -= 25
		case king.X == 3 || king.X == 4:
			score += 30
		}
	}
	return score
}
