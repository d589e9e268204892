package engine

import (
	"context"
	"testing"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

func TestIterateSearchParallelReturnsLegalMove(t *testing.T) {
	root := c.NewInitialPosition()
	tt := NewTransTable(1)

	result := IterateSearchParallel(context.Background(), root, c.Limit{Depth: 2}, tt, 2, nil)

	if result.BestMove == c.MoveEmpty {
		t.Fatal("search returned the null move")
	}

	var buf [c.MaxMoves]c.Move
	legal := false
	for _, m := range root.GenerateMoves(buf[:]) {
		if m == result.BestMove {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("search returned %v, which is not a legal root move", result.BestMove)
	}
}

func TestIterateSearchParallelRespectsDepthLimit(t *testing.T) {
	root := c.NewInitialPosition()
	tt := NewTransTable(1)

	result := IterateSearchParallel(context.Background(), root, c.Limit{Depth: 1}, tt, 1, nil)

	if result.DepthReached != 1 {
		t.Errorf("DepthReached = %d, want 1", result.DepthReached)
	}
}

func TestEngineGoAndApplyMove(t *testing.T) {
	eng := NewEngine(Options{HashMB: 1, Threads: 1})
	result := eng.Go(context.Background(), c.Limit{Depth: 1}, nil)
	if result.BestMove == c.MoveEmpty {
		t.Fatal("Engine.Go returned the null move")
	}
	if err := eng.ApplyMoveString(result.BestMove.String()); err != nil {
		t.Fatalf("ApplyMoveString(%v): %v", result.BestMove, err)
	}
}
