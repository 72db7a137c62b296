// Package ai picks moves for the computer opponent using fixed-depth
// minimax search with alpha-beta pruning over the rules engine's move
// generator.
package ai

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/merinm488/game-store/internal/chess"
)

// Difficulty selects how deep the engine searches.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// easyRandomChance is how often the easy tier ignores the search result and
// plays a uniformly random legal move instead.
const easyRandomChance = 0.2

// Depth returns the search depth in plies for the tier.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 4
	default:
		return 3
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps "easy", "medium" and "hard" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// Engine picks moves for whichever side is to move. Apart from the easy
// tier's occasional random pick it is fully deterministic: the same position
// and difficulty always yield the same move.
type Engine struct {
	difficulty Difficulty
	rng        *rand.Rand
}

func NewEngine(difficulty Difficulty) *Engine {
	return NewEngineWithRand(difficulty, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand fixes the randomness source, which pins down the easy
// tier in tests.
func NewEngineWithRand(difficulty Difficulty, rng *rand.Rand) *Engine {
	return &Engine{difficulty: difficulty, rng: rng}
}

func (e *Engine) Difficulty() Difficulty { return e.difficulty }

func (e *Engine) SetDifficulty(d Difficulty) { e.difficulty = d }

// SelectMove returns the engine's move for the side to move, or nil when the
// game is over or no legal move exists. The search clones the position for
// every candidate, so the game itself is never mutated.
func (e *Engine) SelectMove(g *chess.Game) *chess.Move {
	if g.GameOver() {
		return nil
	}
	pos := g.Position()
	moves := pos.AllLegalMoves(pos.Turn)
	if len(moves) == 0 {
		return nil
	}

	if e.difficulty == Easy && e.rng.Float64() < easyRandomChance {
		m := moves[e.rng.Intn(len(moves))]
		return &m
	}

	depth := e.difficulty.Depth()
	orderMoves(moves)

	maximizing := pos.Turn == chess.White
	alpha, beta := -infinity, infinity
	var best chess.Move
	bestScore := infinity
	if maximizing {
		bestScore = -infinity
	}
	for _, m := range moves {
		child := pos.Clone()
		child.ApplyMove(m)
		score := minimax(child, depth-1, alpha, beta)
		if maximizing {
			if score > bestScore {
				bestScore = score
				best = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore = score
				best = m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}
	return &best
}
