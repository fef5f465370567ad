package connect4

import "github.com/vovakirdan/tui-connect4/internal/engine"

// fallingPiece is the animation of an accepted move. The engine state already
// holds the piece; only the picture lags behind.
type fallingPiece struct {
	Player engine.Player
	Column int
	Target int // landing row
	Row    int // row currently drawn
	ticks  int
}

// startDrop begins animating a piece that landed at (row, col).
// With no ticks per row, or a piece landing on the top row, nothing animates.
func (g *Game) startDrop(p engine.Player, row, col int) {
	g.drop = nil
	if g.dropTicksPerRow <= 0 || row <= 0 {
		return
	}
	g.drop = &fallingPiece{
		Player: p,
		Column: col,
		Target: row,
	}
}

// updateDrop advances the animation one tick.
// Returns true if the piece is still falling.
func (g *Game) updateDrop() bool {
	if g.drop == nil {
		return false
	}

	g.drop.ticks++
	if g.drop.ticks >= g.dropTicksPerRow {
		g.drop.ticks = 0
		g.drop.Row++
	}

	if g.drop.Row >= g.drop.Target {
		g.drop = nil
		return false
	}
	return true
}

// dropping reports whether a piece is in the air.
func (g *Game) dropping() bool {
	return g.drop != nil
}
