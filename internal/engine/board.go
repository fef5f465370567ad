package engine

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of cells stored in row-major order.
// Row 0 is the top of the board; pieces fall towards the highest row index.
//
// A Board shares its storage when copied by value; use Clone before mutating
// a board that other values may still reference.
type Board struct {
	height int
	width  int
	cells  []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(height, width int) (Board, error) {
	if height <= 0 || width <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	return Board{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// newStandardBoard returns an empty Height x Width board.
func newStandardBoard() Board {
	b, err := NewBoard(Height, Width)
	if err != nil {
		panic(err)
	}
	return b
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the cell at (row, col). Out-of-bounds positions read as Empty.
func (b Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

// LandingRow returns the lowest empty row in the column, i.e. where a dropped
// piece comes to rest. ok is false if the column is full or out of range.
func (b Board) LandingRow(col int) (row int, ok bool) {
	if col < 0 || col >= b.width {
		return -1, false
	}
	for row = b.height - 1; row >= 0; row-- {
		if b.cells[row*b.width+col].IsEmpty() {
			return row, true
		}
	}
	return -1, false
}

// Place puts a piece for p at (row, col).
// The cell must be on the board and empty; anything else means landing-row
// resolution and placement got out of sync, and Place panics.
func (b *Board) Place(row, col int, p Player) {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("engine: place out of bounds at (%d, %d)", row, col))
	}
	i := row*b.width + col
	if !b.cells[i].IsEmpty() {
		panic(fmt.Sprintf("engine: place into occupied cell (%d, %d)", row, col))
	}
	b.cells[i] = Occupied(p)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	clone := Board{height: b.height, width: b.width, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// String renders the board as text, one row per line:
// '.' for empty, '1' and '2' for the players' pieces.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.width; col++ {
			switch b.At(row, col) {
			case Occupied(Player1):
				sb.WriteByte('1')
			case Occupied(Player2):
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// FindLandingRow is the function form of Board.LandingRow.
func FindLandingRow(b Board, col int) (int, bool) {
	return b.LandingRow(col)
}

// PlacePiece is the function form of Board.Place.
func PlacePiece(b *Board, row, col int, p Player) {
	b.Place(row, col, p)
}
