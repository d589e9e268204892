package engine

import (
	"context"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

const infScore = MateScore + 1

// worker holds the per-goroutine mutable state a negamax search needs:
// a shared transposition table handle and a node counter drained into
// the SearchInfo after each root move completes.
type worker struct {
	tt    *TransTable
	nodes int64
}

// negamax is a fail-soft alpha-beta search with transposition table
// cutoffs and move ordering, stopping early (returning a best-effort
// score) once ctx is done. depth counts plies remaining; height counts
// plies from the search root and bounds mate-score shaping.
func (w *worker) negamax(ctx context.Context, p *c.Position, alpha, beta, depth, height int) int {
	w.nodes++
	if depth <= 0 {
		return Evaluate(p)
	}
	if height > 0 && ctx.Err() != nil {
		return Evaluate(p)
	}

	if winner := p.Winner(); winner != c.NoWinner {
		if winner == c.Draw {
			return 0
		}
		if (winner == c.WhiteWins) == (p.SideToMove == c.White) {
			return MateScore - height
		}
		return -MateScore + height
	}

	var ttMove c.Move
	if move, score, ttDepth, bound, ok := w.tt.Probe(p.Key); ok {
		ttMove = move
		if ttDepth >= depth {
			switch bound {
			case BoundExact:
				return score
			case BoundLower:
				if score >= beta {
					return score
				}
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score <= alpha {
					return score
				}
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	var buf [c.MaxMoves]c.Move
	moves := p.GenerateMoves(buf[:])
	if len(moves) == 0 {
		return 0 // stalemate: Winner() already treats this as a draw
	}
	orderMoves(p, moves, ttMove)

	originalAlpha := alpha
	best := -infScore
	var bestMove c.Move
	for _, m := range moves {
		undo := p.Apply(m)
		score := -w.negamax(ctx, p, -beta, -alpha, depth-1, height+1)
		p.Undo(undo)

		if score > best {
			best = score
			bestMove = m
		}
		alpha = c.Max(alpha, best)
		if alpha >= beta {
			break
		}
	}

	bound := BoundExact
	if best <= originalAlpha {
		bound = BoundUpper
	} else if best >= beta {
		bound = BoundLower
	}
	w.tt.Store(p.Key, bestMove, best, depth, bound)

	return best
}
