package common

import "testing"

func TestMoveStringRoundTrip(t *testing.T) {
	cases := []string{"a1b2", "g1f2e3"}
	for _, s := range cases {
		m, err := ParseMoveString(s)
		if err != nil {
			t.Fatalf("ParseMoveString(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("ParseMoveString(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseMoveStringCaseInsensitive(t *testing.T) {
	m1, err := ParseMoveString("A1B2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := ParseMoveString("a1b2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m1 != m2 {
		t.Errorf("case-insensitive parse mismatch: %v != %v", m1, m2)
	}
}

func TestParseMoveStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a1", "a1b2c3d4", "z9k9"} {
		if _, err := ParseMoveString(s); err == nil {
			t.Errorf("ParseMoveString(%q) expected an error", s)
		}
	}
}

func TestMoveEmptyIsNeverGenerated(t *testing.T) {
	p := NewInitialPosition()
	var buf [MaxMoves]Move
	for _, m := range p.GenerateMoves(buf[:]) {
		if m == MoveEmpty {
			t.Fatalf("generated the null move")
		}
	}
}

func TestCellNameRoundTrip(t *testing.T) {
	for index := 0; index < NumCells; index++ {
		name := cellName(index)
		got, err := ParseCellName(name)
		if err != nil {
			t.Fatalf("ParseCellName(%q): %v", name, err)
		}
		if got != index {
			t.Errorf("cellName(%d) = %q, ParseCellName roundtrips to %d", index, name, got)
		}
	}
}
