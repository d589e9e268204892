package engine

import (
	c "github.com/eclypse-prime/pijersi-rs/common"
)

// principalVariation walks the transposition table's stored best moves
// from p forward, stopping at a miss, a move no longer legal (a stale
// entry after a Store collision), or a repeated key (to avoid an
// infinite PV through a table that happens to cycle).
func principalVariation(tt *TransTable, p c.Position, limit int) []c.Move {
	var pv []c.Move
	seen := map[uint64]bool{}
	var buf [c.MaxMoves]c.Move
	for len(pv) < limit && !seen[p.Key] {
		seen[p.Key] = true
		move, _, _, _, ok := tt.Probe(p.Key)
		if !ok || move == c.MoveEmpty {
			break
		}
		legal := false
		for _, m := range p.GenerateMoves(buf[:]) {
			if m == move {
				legal = true
				break
			}
		}
		if !legal {
			break
		}
		p.Apply(move)
		pv = append(pv, move)
	}
	return pv
}
