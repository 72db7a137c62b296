package chess

var (
	rookDirs   = []Square{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Square{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightDirs = []Square{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingDirs   = []Square{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// IsSquareAttacked reports whether any piece of the given color attacks sq.
// It is the shared primitive behind check detection, castling legality and
// positional control scoring. An out-of-bounds square is never attacked.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.InBounds() {
		return false
	}
	for _, dir := range rookDirs {
		target := Square{X: sq.X + dir.X, Y: sq.Y + dir.Y}
		for target.InBounds() {
			if occ := p.Board[target.Y][target.X]; occ != nil {
				if occ.Color == by && (occ.Type == Rook || occ.Type == Queen) {
					return true
				}
				break
			}
			target = Square{X: target.X + dir.X, Y: target.Y + dir.Y}
		}
	}
	for _, dir := range bishopDirs {
		target := Square{X: sq.X + dir.X, Y: sq.Y + dir.Y}
		for target.InBounds() {
			if occ := p.Board[target.Y][target.X]; occ != nil {
				if occ.Color == by && (occ.Type == Bishop || occ.Type == Queen) {
					return true
				}
				break
			}
			target = Square{X: target.X + dir.X, Y: target.Y + dir.Y}
		}
	}
	for _, dir := range knightDirs {
		target := Square{X: sq.X + dir.X, Y: sq.Y + dir.Y}
		if occ := p.PieceAt(target); occ != nil && occ.Color == by && occ.Type == Knight {
			return true
		}
	}
	for _, dir := range kingDirs {
		target := Square{X: sq.X + dir.X, Y: sq.Y + dir.Y}
		if occ := p.PieceAt(target); occ != nil && occ.Color == by && occ.Type == King {
			return true
		}
	}
	// White pawns attack upward, so a white attacker sits one rank below sq;
	// a black attacker one rank above.
	pawnRank := 1
	if by == Black {
		pawnRank = -1
	}
	for _, dx := range []int{-1, 1} {
		target := Square{X: sq.X + dx, Y: sq.Y + pawnRank}
		if occ := p.PieceAt(target); occ != nil && occ.Color == by && occ.Type == Pawn {
			return true
		}
	}
	return false
}
