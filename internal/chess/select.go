package chess

// SelectSquare drives the click-to-move flow. Clicking an own piece selects
// it and records its legal moves; clicking a destination of the current
// selection applies that move (promotions default to queen) and returns the
// resulting events; anything else clears the selection. The returned slice
// is nil when no move was applied.
func (g *Game) SelectSquare(sq Square) []Event {
	if g.gameOver || !sq.InBounds() {
		g.clearSelection()
		return nil
	}
	if g.selected != nil {
		for _, m := range g.selectedMoves {
			if m.To == sq {
				return g.MakeMove(m)
			}
		}
	}
	piece := g.pos.PieceAt(sq)
	if piece != nil && piece.Color == g.pos.Turn {
		sel := sq
		g.selected = &sel
		g.selectedMoves = g.pos.LegalMoves(sq)
		return nil
	}
	g.clearSelection()
	return nil
}

// SelectedSquare returns the current selection, nil when nothing is
// selected.
func (g *Game) SelectedSquare() *Square {
	if g.selected == nil {
		return nil
	}
	sel := *g.selected
	return &sel
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.selectedMoves = nil
}
