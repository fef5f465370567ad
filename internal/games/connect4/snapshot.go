package connect4

import "github.com/vovakirdan/tui-connect4/internal/engine"

// Snapshot captures the presentation state for tests.
type Snapshot struct {
	Tick        uint64
	Cursor      int
	Active      engine.Player
	Status      engine.Status
	Winner      engine.Player
	Moves       int
	Board       string
	Dropping    bool
	DropRow     int
	DontPresses int
	Message     string
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	dropRow := -1
	if g.drop != nil {
		dropRow = g.drop.Row
	}

	return Snapshot{
		Tick:        g.tick,
		Cursor:      g.cursor,
		Active:      g.state.Active,
		Status:      g.state.Status,
		Winner:      g.state.Winner,
		Moves:       g.state.Moves,
		Board:       g.state.Board.String(),
		Dropping:    g.dropping(),
		DropRow:     dropRow,
		DontPresses: g.dont.Presses(),
		Message:     g.banner(),
		TooSmall:    g.tooSmall,
	}
}
