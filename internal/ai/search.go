package ai

import (
	"sort"

	"github.com/merinm488/game-store/internal/chess"
)

const (
	// mateScore dwarfs every positional score. The remaining depth is
	// added on top so a faster mate outscores a slower one.
	mateScore = 100000
	infinity  = 1 << 30
)

// minimax scores pos from White's perspective, searching to the given depth.
// Terminal positions are recognized at any depth, so a mate inside the
// horizon is never missed for lack of remaining plies. Alpha-beta pruning
// changes the work, not the result.
func minimax(p *chess.Position, depth, alpha, beta int) int {
	moves := p.AllLegalMoves(p.Turn)
	if len(moves) == 0 {
		if p.InCheck(p.Turn) {
			if p.Turn == chess.White {
				return -(mateScore + depth)
			}
			return mateScore + depth
		}
		return 0
	}
	if depth == 0 {
		return evaluate(p)
	}

	orderMoves(moves)
	if p.Turn == chess.White {
		best := -infinity
		for _, m := range moves {
			child := p.Clone()
			child.ApplyMove(m)
			if score := minimax(child, depth-1, alpha, beta); score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := infinity
	for _, m := range moves {
		child := p.Clone()
		child.ApplyMove(m)
		if score := minimax(child, depth-1, alpha, beta); score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// orderMoves sorts captures first, most valuable victim first. The sort is
// stable so equal moves keep the generator's square order, which keeps the
// search deterministic.
func orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return captureScore(moves[i]) > captureScore(moves[j])
	})
}

func captureScore(m chess.Move) int {
	if m.Capture == "" {
		return 0
	}
	return pieceValue(m.Capture)
}
