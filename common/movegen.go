package common

// GenerateMoves appends every legal move for the side to move into buf
// and returns the used prefix. buf should be sized MaxMoves; the
// generator never allocates. A position that is already won (a non-Wise
// piece on its goal row) has no moves.
//
// Ported directly from the reference engine's available_player_actions
// / available_piece_actions: for each friendly piece, a stack and a
// single piece branch differently. A stack can step 1 or 2 cells before
// optionally stacking/unstacking its top piece, or first stack its top
// piece onto a neighbour and move the new stack on. A single piece
// either steps 1 cell, or stacks onto a neighbouring friendly piece
// after which the new stack may move on 1 or 2 cells; a single piece
// never steps and then stacks within one move.
func (p *Position) GenerateMoves(buf []Move) []Move {
	moves := buf[:0]
	for i := BlackHomeFirst; i <= BlackHomeLast; i++ {
		if c := p.Cells[i]; !c.IsEmpty() && c.Colour() == White && !c.Top().IsWise() {
			return moves
		}
	}
	for i := WhiteHomeFirst; i <= WhiteHomeLast; i++ {
		if c := p.Cells[i]; !c.IsEmpty() && c.Colour() == Black && !c.Top().IsWise() {
			return moves
		}
	}
	for index := 0; index < NumCells; index++ {
		cell := p.Cells[index]
		if cell.IsEmpty() || cell.Colour() != p.SideToMove {
			continue
		}
		moves = appendPieceMoves(&p.Cells, index, moves)
	}
	return moves
}

func appendPieceMoves(cells *[NumCells]Cell, indexStart int, moves []Move) []Move {
	pieceStart := cells[indexStart]

	if pieceStart.IsStack() {
		// 2-range first leg.
		for _, indexMid := range neighbours2[indexStart] {
			if canMove2(cells, pieceStart, indexStart, indexMid) {
				for _, indexEnd := range neighbours1[indexMid] {
					if canUnstack(cells, pieceStart, indexEnd) || canStack(cells, pieceStart, indexEnd) {
						moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
					}
				}
				moves = append(moves, NewMove(indexStart, ViaNone, indexMid))
			}
		}
		// 1-range first leg.
		for _, indexMid := range neighbours1[indexStart] {
			switch {
			case canMove1(cells, pieceStart, indexMid):
				for _, indexEnd := range neighbours1[indexMid] {
					if canUnstack(cells, pieceStart, indexEnd) || canStack(cells, pieceStart, indexEnd) {
						moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
					}
				}
				moves = append(moves, NewMove(indexStart, indexMid, indexStart))
				moves = append(moves, NewMove(indexStart, ViaNone, indexMid))
			case canStack(cells, pieceStart, indexMid):
				for _, indexEnd := range neighbours2[indexMid] {
					if canMove2(cells, pieceStart, indexMid, indexEnd) {
						moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
					}
				}
				for _, indexEnd := range neighbours1[indexMid] {
					if canMove1(cells, pieceStart, indexEnd) {
						moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
					}
				}
				moves = append(moves, NewMove(indexStart, indexStart, indexMid))
			}

			if canUnstack(cells, pieceStart, indexMid) {
				moves = append(moves, NewMove(indexStart, indexStart, indexMid))
			}
		}
		return moves
	}

	// Single, unstacked piece: at most a 1-range step.
	for _, indexMid := range neighbours1[indexStart] {
		switch {
		case canStack(cells, pieceStart, indexMid):
			for _, indexEnd := range neighbours2[indexMid] {
				if canMove2(cells, pieceStart, indexMid, indexEnd) ||
					(indexStart == (indexMid+indexEnd)/2 && canMove1(cells, pieceStart, indexEnd)) {
					moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
				}
			}
			for _, indexEnd := range neighbours1[indexMid] {
				if canMove1(cells, pieceStart, indexEnd) || indexStart == indexEnd {
					moves = append(moves, NewMove(indexStart, indexMid, indexEnd))
				}
			}
			moves = append(moves, NewMove(indexStart, indexStart, indexMid))
		case canMove1(cells, pieceStart, indexMid):
			moves = append(moves, NewMove(indexStart, ViaNone, indexMid))
		}
	}
	return moves
}
