package common

import "testing"

// Perft counts leaf positions depth plies deep from p by brute-force
// enumeration, the standard move-generator correctness oracle.
func Perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var buf [MaxMoves]Move
	moves := p.GenerateMoves(buf[:])
	if depth == 1 {
		return len(moves)
	}
	var result int
	for _, m := range moves {
		undo := p.Apply(m)
		result += Perft(p, depth-1)
		p.Undo(undo)
	}
	return result
}

func TestPerftInitialPosition(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 186},
		{2, 34054},
		{3, 6410472},
		{4, 1181445032},
	}
	for _, test := range tests {
		p := NewInitialPosition()
		if nodes := Perft(&p, test.depth); nodes != test.nodes {
			t.Errorf("perft(%d) = %d, want %d", test.depth, nodes, test.nodes)
		}
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	p := NewInitialPosition()
	var buf [MaxMoves]Move
	moves := p.GenerateMoves(buf[:])
	for _, m := range moves {
		before := p
		undo := p.Apply(m)
		p.Undo(undo)
		if p != before {
			t.Fatalf("apply/undo of %v did not restore position", m)
		}
		if p.Key != p.ComputeKey() {
			t.Fatalf("hash mismatch after undo of %v", m)
		}
	}
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	p := NewInitialPosition()
	var buf [MaxMoves]Move
	moves := p.GenerateMoves(buf[:])
	for i, m := range moves {
		if i >= 20 {
			break
		}
		child := p
		child.Apply(m)
		if child.Key != child.ComputeKey() {
			t.Errorf("move %v: incremental key %d != recomputed %d", m, child.Key, child.ComputeKey())
		}
	}
}
