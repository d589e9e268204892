package common

import "testing"

func TestParsePSNRoundTrip(t *testing.T) {
	p, err := ParsePSN(InitialPSN)
	if err != nil {
		t.Fatalf("ParsePSN: %v", err)
	}
	if got := p.String(); got != InitialPSN {
		t.Errorf("String() = %q, want %q", got, InitialPSN)
	}
}

func TestParsePSNRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"s-p-r-s-p-r-/p-r-s-wwr-s-p-/6/7/6/P-S-R-WWS-R-P-/R-P-S-R-P-S- w 0", // missing field
		"s-p-r-s-p-r-/6/7/6/P-S-R-WWS-R-P-/R-P-S-R-P-S- w 0 1",              // wrong row count
	}
	for _, psn := range cases {
		if _, err := ParsePSN(psn); err == nil {
			t.Errorf("ParsePSN(%q) expected an error", psn)
		}
	}
}

func TestWinnerNoneAtStart(t *testing.T) {
	p := NewInitialPosition()
	if w := p.Winner(); w != NoWinner {
		t.Errorf("initial position Winner() = %v, want NoWinner", w)
	}
}

func TestWinnerDrawAtHalfMoveLimit(t *testing.T) {
	p := NewInitialPosition()
	p.HalfMoves = MaxHalfMoveClock
	if w := p.Winner(); w != Draw {
		t.Errorf("Winner() at half-move limit = %v, want Draw", w)
	}
}

func TestWinnerWhiteOnGoalRow(t *testing.T) {
	p := NewInitialPosition()
	p.Cells[BlackHomeFirst] = NewSingleCell(NewPiece(White, Rock))
	if w := p.Winner(); w != WhiteWins {
		t.Errorf("Winner() = %v, want WhiteWins", w)
	}
}

func TestWinnerWiseOnGoalRowDoesNotWin(t *testing.T) {
	p := NewInitialPosition()
	for i := BlackHomeFirst; i <= BlackHomeLast; i++ {
		p.Cells[i] = CellEmpty
	}
	p.Cells[BlackHomeFirst] = NewSingleCell(NewPiece(White, Wise))
	if w := p.Winner(); w == WhiteWins {
		t.Errorf("a Wise piece on the goal row should not win")
	}
}
