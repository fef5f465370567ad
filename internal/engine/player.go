// Package engine implements the Connect Four rules: board state, move
// resolution, win and tie detection, and turn management.
// It has no dependencies on the terminal or on any presentation layer, so the
// same engine backs the local UI, SSH sessions and tests.
package engine

// Board dimensions and line length are fixed.
const (
	Height   = 6
	Width    = 7
	ConnectN = 4
)

// Player identifies one of the two players. The zero value is NoPlayer.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Valid reports whether p is Player1 or Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Other returns the opponent of p. NoPlayer maps to NoPlayer.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// Cell is the content of a single board position: Empty or Occupied(player).
type Cell uint8

// Empty is an unoccupied cell.
const Empty Cell = 0

// Occupied returns the cell value owned by p.
// Panics if p is not a valid player.
func Occupied(p Player) Cell {
	if !p.Valid() {
		panic("engine: cannot occupy a cell for " + p.String())
	}
	return Cell(p)
}

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Owner returns the player occupying the cell.
func (c Cell) Owner() (Player, bool) {
	if c == Empty {
		return NoPlayer, false
	}
	return Player(c), true
}

// Position is a (row, column) coordinate. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}
