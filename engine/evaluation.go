package engine

import (
	c "github.com/eclypse-prime/pijersi-rs/common"
)

// MateScore is returned for a position with a winner; it is kept far
// outside any realistic material score so it always sorts correctly
// against static evaluations.
const MateScore = 16384

// materialValue is the base score of a piece of each kind, plus a flat
// bonus for being the top of a two-piece stack (a stack commands both
// its own destination squares and the ones its buried piece would
// reach once unstacked).
var materialValue = [4]int{
	c.Scissors: 100,
	c.Paper:    100,
	c.Rock:     100,
	c.Wise:     130,
}

const stackBonus = 40

// pieceSquareTable[kind][cellIndex] is the positional bonus for a white
// piece of that kind sitting on that cell; a black piece looks up the
// row-mirrored cell and negates the sign, which is what gives the
// evaluator its required colour symmetry (eval(p, c) = -eval(p, ¬c)).
//
// Values grow toward the opponent's home row for non-Wise kinds,
// grounded on the reference engine's per-cell, per-piece lookup
// approach (search/eval.rs's PIECE_SCORES) without copying its exact
// numbers, which were tuned against the original's own search and
// would not mean the same thing here.
var pieceSquareTable [4][c.NumCells]int

func init() {
	for index := 0; index < c.NumCells; index++ {
		row, _ := rowOf(index)
		advance := 6 - row // White's goal is row 0, so advance grows toward it
		for _, kind := range []c.Kind{c.Scissors, c.Paper, c.Rock} {
			pieceSquareTable[kind][index] = advance * 6
		}
		// The Wise piece has no goal row to rush toward; it is worth
		// more near the centre, where it can support more cells.
		pieceSquareTable[c.Wise][index] = centreBonus(row, index)
	}
}

func rowOf(index int) (row, col int) {
	remaining := index
	for r, w := range c.RowWidth {
		if remaining < w {
			return r, remaining
		}
		remaining -= w
	}
	return -1, -1
}

func centreBonus(row, index int) int {
	const centreRow = 3
	d := row - centreRow
	if d < 0 {
		d = -d
	}
	return (3 - d) * 10
}

func mirrorIndex(index int) int {
	row, col := rowOf(index)
	mirrored := 6 - row
	start := 0
	for r := 0; r < mirrored; r++ {
		start += c.RowWidth[r]
	}
	return start + col
}

// Evaluate scores a position from the side-to-move's point of view: a
// positive score favours the side to move. A finished position returns
// +/-MateScore for a win, or 0 for a draw, rather than falling through
// to the positional terms.
func Evaluate(p *c.Position) int {
	winner := p.Winner()
	if winner == c.Draw {
		return 0
	}
	if winner == c.WhiteWins || winner == c.BlackWins {
		if (winner == c.WhiteWins) == (p.SideToMove == c.White) {
			return MateScore
		}
		return -MateScore
	}

	score := 0
	for index := 0; index < c.NumCells; index++ {
		cell := p.Cells[index]
		if cell.IsEmpty() {
			continue
		}
		score += evaluatePiece(cell.Top(), index, cell.IsStack())
		if bottom := cell.Bottom(); bottom != c.PieceNone {
			score += evaluatePiece(bottom, index, false)
		}
	}

	if p.SideToMove == c.Black {
		score = -score
	}
	return score
}

func evaluatePiece(piece c.Piece, index int, isStackTop bool) int {
	sign := 1
	psqIndex := index
	if piece.Colour() == c.Black {
		sign = -1
		psqIndex = mirrorIndex(index)
	}
	value := materialValue[piece.Kind()] + pieceSquareTable[piece.Kind()][psqIndex]
	if isStackTop {
		value += stackBonus
	}
	return sign * value
}
