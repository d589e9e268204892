package engine

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// IterateSearchParallel runs iterative deepening over root, splitting
// each depth's root move list across up to threads goroutines with
// golang.org/x/sync/errgroup, the same work-pool abstraction the
// teacher's root go.mod already depends on (there used for
// dataset-generation fan-out, here for the search's root split).
// Each worker gets its own copy of root plus its own negamax worker
// state; only the transposition table is shared, and it is built to
// tolerate concurrent lockless access.
//
// progress, if non-nil, is called after every completed depth with the
// iteration's SearchInfo so far.
func IterateSearchParallel(ctx context.Context, root c.Position, limit c.Limit,
	tt *TransTable, threads int, progress func(c.SearchInfo)) c.SearchInfo {

	if threads < 1 {
		threads = 1
	}

	ctx, cancel := newSearchContext(ctx, limit)
	defer cancel()

	tm := newTimeManager()

	var buf [c.MaxMoves]c.Move
	rootMoves := root.GenerateMoves(buf[:])
	if len(rootMoves) == 0 {
		return c.SearchInfo{BestMove: c.MoveEmpty, ElapsedMS: tm.ElapsedMilliseconds()}
	}

	maxDepth := limit.Depth
	if maxDepth <= 0 {
		maxDepth = 64
	}

	var result c.SearchInfo
	ttMove := c.MoveEmpty

	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}

		orderMoves(&root, rootMoves, ttMove)

		type rootScore struct {
			move  c.Move
			score int
		}
		scores := make([]rootScore, len(rootMoves))

		var mu sync.Mutex
		alpha := -infScore
		beta := infScore

		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(threads)

		for i, m := range rootMoves {
			i, m := i, m
			group.Go(func() error {
				child := root
				undo := child.Apply(m)
				w := &worker{tt: tt}

				mu.Lock()
				localAlpha := alpha
				mu.Unlock()

				score := -w.negamax(gctx, &child, -beta, -localAlpha, depth-1, 1)
				child.Undo(undo)

				mu.Lock()
				scores[i] = rootScore{m, score}
				if score > alpha {
					alpha = score
				}
				tm.AddNodes(w.nodes)
				mu.Unlock()
				return nil
			})
		}
		_ = group.Wait()

		if ctx.Err() != nil && depth > 1 {
			// Ran out of time mid-depth: keep the previous iteration's
			// result rather than a partially evaluated one.
			break
		}

		sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

		best := scores[0]
		tt.Store(root.Key, best.move, best.score, depth, BoundExact)
		ttMove = best.move

		pv := append([]c.Move{best.move}, principalVariation(tt, applied(root, best.move), maxDepth-1)...)

		result = c.SearchInfo{
			BestMove:     best.move,
			PV:           pv,
			Score:        best.score,
			DepthReached: depth,
			Nodes:        tm.Nodes(),
			ElapsedMS:    tm.ElapsedMilliseconds(),
		}
		if progress != nil {
			progress(result)
		}

		for i, rs := range scores {
			rootMoves[i] = rs.move
		}

		if best.score >= MateScore-maxDepth {
			break
		}
	}

	return result
}

func applied(p c.Position, m c.Move) c.Position {
	p.Apply(m)
	return p
}
