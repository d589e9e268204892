// Package common implements the board representation, move codec and
// move generator shared by the search engine: the primitives everything
// else in this module is built on.
package common

// Colour identifies the side a piece belongs to.
type Colour uint8

const (
	White Colour = 0
	Black Colour = 1
)

// Opponent returns the other colour.
func (c Colour) Opponent() Colour {
	return c ^ 1
}

func (c Colour) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Kind is a piece's rock-paper-scissors type, or Wise.
type Kind uint8

const (
	Scissors Kind = 0
	Paper    Kind = 1
	Rock     Kind = 2
	Wise     Kind = 3
)

// Beats reports whether a piece of kind k captures a piece of kind other,
// using the rock-paper-scissors relation. Wise never captures.
func (k Kind) Beats(other Kind) bool {
	switch k {
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	case Rock:
		return other == Scissors
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case Scissors:
		return "S"
	case Paper:
		return "P"
	case Rock:
		return "R"
	case Wise:
		return "W"
	}
	return "?"
}

// Piece is a single (colour, kind) pair packed into the low nibble of a
// Cell: bit0 is the present flag, bit1 is colour, bits2-3 are kind.
type Piece uint8

// PieceNone is the empty single-piece value (present flag clear).
const PieceNone Piece = 0

// NewPiece builds a present piece nibble from a colour and a kind.
func NewPiece(c Colour, k Kind) Piece {
	return Piece(1 | uint8(c)<<1 | uint8(k)<<2)
}

func (p Piece) IsEmpty() bool   { return p == PieceNone }
func (p Piece) Colour() Colour  { return Colour((p >> 1) & 1) }
func (p Piece) Kind() Kind       { return Kind((p >> 2) & 3) }
func (p Piece) IsWise() bool    { return p.Kind() == Wise }

// Cell packs a board square's contents: the low nibble is the top piece
// (or PieceNone if the square is empty), the high nibble is the bottom
// piece of a stack, or zero if the square holds at most one piece.
type Cell uint8

// CellEmpty is the zero value: no pieces on the square.
const CellEmpty Cell = 0

// NewSingleCell builds a cell holding one unstacked piece.
func NewSingleCell(top Piece) Cell {
	return Cell(top)
}

// NewStackCell builds a cell holding a two-piece stack, top over bottom.
func NewStackCell(top, bottom Piece) Cell {
	return Cell(uint8(top) | uint8(bottom)<<4)
}

func (c Cell) IsEmpty() bool { return c == CellEmpty }
func (c Cell) Top() Piece    { return Piece(c & 0x0F) }
func (c Cell) Bottom() Piece { return Piece(c >> 4) }
func (c Cell) IsStack() bool { return c.Bottom() != PieceNone }

// Colour returns the colour of the piece occupying the cell. Callers must
// check IsEmpty first; the result is meaningless on an empty cell.
func (c Cell) Colour() Colour { return c.Top().Colour() }

// NumCells is the size of the Pijersi board.
const NumCells = 45

// Row widths alternate 6,7,6,7,6,7,6 from the black home row (row 0) to
// the white home row (row 6).
var RowWidth = [7]int{6, 7, 6, 7, 6, 7, 6}

// RowLetter is the PSN/move-text row letter for each of the 7 rows, top
// (black home, row 0) to bottom (white home, row 6).
var RowLetter = [7]byte{'g', 'f', 'e', 'd', 'c', 'b', 'a'}

// BlackHome* and WhiteHome* bound each home row's index range. A home
// row is the opponent's goal row: a non-Wise White piece on the Black
// home row wins for White, and a non-Wise Black piece on the White home
// row wins for Black.
const (
	BlackHomeFirst = 0
	BlackHomeLast  = 5
	WhiteHomeFirst = 39
	WhiteHomeLast  = 44
)

// MaxMoves bounds the size of a move-generation buffer; the empirical
// maximum legal move count for any reachable Pijersi position is well
// under this.
const MaxMoves = 512

// MaxHalfMoveClock is the half-move count at or beyond which the game is
// a draw absent a winner.
const MaxHalfMoveClock = 20

// InitialPSN is the starting position in Pijersi Standard Notation.
const InitialPSN = "s-p-r-s-p-r-/p-r-s-wwr-s-p-/6/7/6/P-S-R-WWS-R-P-/R-P-S-R-P-S- w 0 1"

// Winner is the result of a finished or drawn game.
type Winner int8

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
	Draw
)

func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// Limit is the search termination condition passed to Engine.Go.
type Limit struct {
	Depth    int // ply count, 0 means "unset"
	MoveTime int // milliseconds, 0 means "unset"
}

// SearchInfo is the result of a completed (or cancelled) search: the
// best move found, its principal variation, and search statistics.
type SearchInfo struct {
	BestMove    Move
	PV          []Move
	Score       int
	DepthReached int
	Nodes       int64
	ElapsedMS   int64
}
