package engine

import (
	"sort"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// orderMoves sorts moves in place for alpha-beta efficiency: the
// transposition table's suggested move first, then captures ordered
// by victim kind (best first) then aggressor kind (cheapest first),
// then quiet moves in their generated order. This is the ordering
// spec.md section 4.G specifies; no history heuristic is layered on
// top of it.
func orderMoves(p *c.Position, moves []c.Move, ttMove c.Move) {
	type scored struct {
		move     c.Move
		priority int
	}
	buf := make([]scored, len(moves))
	for i, m := range moves {
		buf[i] = scored{m, movePriority(p, m, ttMove)}
	}
	sort.SliceStable(buf, func(i, j int) bool { return buf[i].priority > buf[j].priority })
	for i, s := range buf {
		moves[i] = s.move
	}
}

func movePriority(p *c.Position, m, ttMove c.Move) int {
	if m == ttMove {
		return 1 << 20
	}
	victim, aggressor, isCapture := captureKinds(p, m)
	if !isCapture {
		return 0
	}
	return 1000 + int(victim)*10 - int(aggressor)
}

// captureKinds reports the kinds involved if m removes an enemy piece
// from the board, looking at whichever of via/to the move would
// actually displace a piece from, per the same three-way shape read at
// Apply time.
func captureKinds(p *c.Position, m c.Move) (victim, aggressor c.Kind, isCapture bool) {
	from := p.Cells[m.From()]
	aggressor = from.Top().Kind()
	check := func(idx int) (c.Kind, bool) {
		cell := p.Cells[idx]
		if !cell.IsEmpty() && cell.Colour() != p.SideToMove {
			return cell.Top().Kind(), true
		}
		return 0, false
	}
	if m.HasVia() {
		if k, ok := check(m.Via()); ok {
			return k, aggressor, true
		}
	}
	if k, ok := check(m.To()); ok {
		return k, aggressor, true
	}
	return 0, aggressor, false
}
