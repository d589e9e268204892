package common

import (
	"fmt"
	"strings"
)

// rowOf and colOf recover a cell's (row, col) from its board index.
// Row widths alternate 6,7 so the mapping isn't a fixed stride; walking
// RowWidth is cheap and keeps the one source of truth for row layout in
// types.go.
func rowOf(index int) (row, col int) {
	remaining := index
	for r, w := range RowWidth {
		if remaining < w {
			return r, remaining
		}
		remaining -= w
	}
	return -1, -1
}

func coordsToIndex(row, col int) int {
	if row < 0 || row > 6 || col < 0 || col >= RowWidth[row] {
		return -1

	}
	return rowStart(row) + col
}

// cellName renders a board index as its PSN/move-text cell name: row
// letter (g,f,e,d,c,b,a top to bottom) followed by a 1-based column
// digit.
func cellName(index int) string {
	row, col := rowOf(index)
	return string(RowLetter[row]) + string('1'+byte(col))
}

// ParseCellName parses a two-character cell name such as "a1" or "G6"
// (case-insensitive) back to a board index.
func ParseCellName(s string) (int, error) {
	if len(s) != 2 {
		return -1, fmt.Errorf("%w: cell name %q must be 2 characters", ErrMalformedMove, s)
	}
	letter := s[0]
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	row := strings.IndexByte(string(RowLetter[:]), letter)
	if row < 0 {
		return -1, fmt.Errorf("%w: unknown row letter %q", ErrMalformedMove, string(s[0]))
	}
	if s[1] < '1' || s[1] > '9' {
		return -1, fmt.Errorf("%w: unknown column digit %q", ErrMalformedMove, string(s[1]))
	}
	col := int(s[1] - '1')
	index := coordsToIndex(row, col)
	if index < 0 {
		return -1, fmt.Errorf("%w: column %d out of range for row %q", ErrMalformedMove, col+1, string(s[0]))
	}
	return index, nil
}
