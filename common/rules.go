package common

// canTake reports whether an attacking piece kind captures a target
// kind under the rock-paper-scissors relation. Wise captures nothing.
func canTake(attacker, target Kind) bool {
	return attacker.Beats(target)
}

// canMove1 reports whether moving onto indexEnd as a plain 1-step (or
// already-validated 2-step) destination is legal for movingCell's top
// piece: empty, or an enemy piece it can capture.
func canMove1(cells *[NumCells]Cell, movingCell Cell, indexEnd int) bool {
	target := cells[indexEnd]
	if target.IsEmpty() {
		return true
	}
	if target.Colour() == movingCell.Colour() {
		return false
	}
	return canTake(movingCell.Top().Kind(), target.Top().Kind())
}

// canMove2 additionally requires the midpoint cell between indexStart
// and indexEnd to be empty: a 2-range step cannot jump over a piece.
func canMove2(cells *[NumCells]Cell, movingCell Cell, indexStart, indexEnd int) bool {
	mid := (indexStart + indexEnd) / 2
	if !cells[mid].IsEmpty() {
		return false
	}
	return canMove1(cells, movingCell, indexEnd)
}

// canStack reports whether movingCell's top piece may stack onto the
// single friendly piece sitting at indexEnd. A Wise top piece may stack
// only onto a Wise single piece; any other top piece may stack onto any
// friendly single piece.
func canStack(cells *[NumCells]Cell, movingCell Cell, indexEnd int) bool {
	target := cells[indexEnd]
	if target.IsEmpty() || target.Colour() != movingCell.Colour() || target.IsStack() {
		return false
	}
	if movingCell.Top().IsWise() && !target.Top().IsWise() {
		return false
	}
	return true
}

// canUnstack reports whether splitting off movingCell's top piece onto
// indexEnd is legal: empty, or an enemy piece it can capture.
func canUnstack(cells *[NumCells]Cell, movingCell Cell, indexEnd int) bool {
	target := cells[indexEnd]
	if target.IsEmpty() {
		return true
	}
	if target.Colour() == movingCell.Colour() {
		return false
	}
	return canTake(movingCell.Top().Kind(), target.Top().Kind())
}
