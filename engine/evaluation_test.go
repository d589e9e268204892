package engine

import (
	"testing"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// emptyPosition returns a position with no pieces, the half-move clock
// at zero and the full-move number at 1, so tests can place exactly the pieces they care about.
func emptyPosition(side c.Colour) c.Position {
	p := c.NewInitialPosition()
	for i := range p.Cells {
		p.Cells[i] = c.CellEmpty
	}
	p.SideToMove = side
	return p
}

func TestEvaluateSymmetry(t *testing.T) {
	white := emptyPosition(c.White)
	white.Cells[10] = c.NewSingleCell(c.NewPiece(c.White, c.Rock))

	black := emptyPosition(c.Black)
	mirrored := mirrorIndex(10)
	black.Cells[mirrored] = c.NewSingleCell(c.NewPiece(c.Black, c.Rock))

	whiteScore := Evaluate(&white)
	blackScore := Evaluate(&black)

	if whiteScore != blackScore {
		t.Errorf("mirrored positions should evaluate equally from their own side to move, got %d and %d", whiteScore, blackScore)
	}
}

func TestEvaluateMateScoreOnWin(t *testing.T) {
	p := c.NewInitialPosition()
	p.Cells[c.BlackHomeFirst] = c.NewSingleCell(c.NewPiece(c.White, c.Rock))
	if score := Evaluate(&p); score != MateScore {
		t.Errorf("Evaluate on a winning position for the side to move = %d, want %d", score, MateScore)
	}
}
