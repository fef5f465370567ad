package connect4

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

const (
	cellWidth  = 4 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)

	boardW = engine.Width*cellWidth + 1   // +1 for right border
	boardH = engine.Height*cellHeight + 1 // +1 for bottom border

	// Rows above the board: title, players, column numbers, cursor
	headerH = 6
	// Rows below the board: gap, banner, hint
	footerH = 3

	minWidth  = boardW + 3
	minHeight = headerH + boardH + footerH
)

// layout holds the top-left corner of the whole picture and of the grid.
type layout struct {
	left, top int
	boardY    int
}

func (g *Game) layout() layout {
	l := layout{
		left: (g.screenW - boardW) / 2,
		top:  max((g.screenH-minHeight)/2, 0),
	}
	l.boardY = l.top + headerH
	return l
}

// cellPos returns the screen position of the piece in (row, col).
func (l layout) cellPos(row, col int) (x, y int) {
	return l.left + col*cellWidth + cellWidth/2, l.boardY + row*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCentered(l.top, "CONNECT FOUR", core.ColorBrightWhite)
	g.renderPlayers(dst, l)
	g.renderColumns(dst, l)
	g.renderGrid(dst, l)
	g.renderPieces(dst, l)
	g.renderBanner(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)

	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Please enlarge to at least %dx%d", minWidth, minHeight), core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("(currently %dx%d)", g.screenW, g.screenH), core.ColorGray)
}

// renderPlayers lists both players; the one to move glows.
func (g *Game) renderPlayers(dst *core.Screen, l layout) {
	y := l.top + 2

	left := g.playerLabel(engine.Player1)
	g.drawPlayer(dst, l.left, y, engine.Player1, left)

	right := g.playerLabel(engine.Player2)
	x := l.left + boardW - utf8.RuneCountInString(right)
	g.drawPlayer(dst, x, y, engine.Player2, right)
}

// playerLabel returns "<marker> <glyph> <name>".
func (g *Game) playerLabel(p engine.Player) string {
	marker := ' '
	if g.glows(p) {
		marker = '▶'
		if g.state.Status == engine.Won {
			marker = '★'
		}
	}
	pl := g.playerFor(p)
	return string(marker) + " " + string(pl.Glyph) + " " + pl.Name
}

func (g *Game) drawPlayer(dst *core.Screen, x, y int, p engine.Player, label string) {
	pl := g.playerFor(p)
	nameColor := core.ColorGray
	if g.glows(p) {
		nameColor = pl.Color.Bright()
	}
	dst.DrawTextColor(x, y, label, nameColor)
	// The glyph keeps the player color even when dimmed
	dst.SetColor(x+2, y, pl.Glyph, pl.Color)
}

// glows reports whether p is highlighted: the player to move, or the winner.
func (g *Game) glows(p engine.Player) bool {
	if turn, ok := g.turn(); ok {
		return turn == p
	}
	return g.state.Status == engine.Won && g.state.Winner == p
}

// renderColumns draws the column numbers and the cursor.
func (g *Game) renderColumns(dst *core.Screen, l layout) {
	numY := l.top + 4
	for col := 0; col < engine.Width; col++ {
		x, _ := l.cellPos(0, col)
		c := core.ColorGray
		if col == g.cursor {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColor(x, numY, strconv.Itoa(col+1), c)
	}

	turn, ok := g.turn()
	if !ok {
		return
	}
	x, _ := l.cellPos(0, g.cursor)
	dst.SetColor(x, numY+1, '▼', g.playerFor(turn).Color)
}

// renderGrid draws the board lines.
func (g *Game) renderGrid(dst *core.Screen, l layout) {
	const c = core.ColorBlue

	for y := 0; y < engine.Height+1; y++ {
		for x := 0; x < engine.Width+1; x++ {
			px := l.left + x*cellWidth
			py := l.boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.Width:
				corner = '┐'
			case y == engine.Height && x == 0:
				corner = '└'
			case y == engine.Height && x == engine.Width:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.Height:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.Width:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, c)

			if x < engine.Width {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', c)
				}
			}
			if y < engine.Height {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', c)
				}
			}
		}
	}
}

// renderPieces draws the settled pieces, the winning line and the falling piece.
func (g *Game) renderPieces(dst *core.Screen, l layout) {
	var winning map[engine.Position]bool
	if g.state.Status == engine.Won && !g.dropping() {
		winning = make(map[engine.Position]bool, engine.ConnectN)
		for _, pos := range g.state.WinLine {
			winning[pos] = true
		}
	}

	b := g.state.Board
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			owner, ok := b.At(row, col).Owner()
			if !ok {
				continue
			}
			// The landing cell stays empty until the piece gets there
			if g.dropping() && row == g.drop.Target && col == g.drop.Column {
				continue
			}

			pl := g.playerFor(owner)
			x, y := l.cellPos(row, col)
			if winning[engine.Position{Row: row, Col: col}] {
				c := pl.Color.Bright()
				dst.SetColor(x-1, y, '[', c)
				dst.SetColor(x, y, pl.Glyph, c)
				dst.SetColor(x+1, y, ']', c)
				continue
			}
			dst.SetColor(x, y, pl.Glyph, pl.Color)
		}
	}

	if g.dropping() {
		pl := g.playerFor(g.drop.Player)
		x, y := l.cellPos(g.drop.Row, g.drop.Column)
		dst.SetColor(x, y, pl.Glyph, pl.Color)
	}
}

// renderBanner draws the status line under the board.
func (g *Game) renderBanner(dst *core.Screen, l layout) {
	y := l.boardY + boardH + 1
	status := g.Status()

	c := core.ColorWhite
	switch {
	case g.state.Status == engine.Won && status.GameOver:
		c = g.playerFor(g.state.Winner).Color.Bright()
	case g.state.Status == engine.Tied && status.GameOver:
		c = core.ColorBrightWhite
	case g.notice != "":
		c = core.ColorOrange
	default:
		if turn, ok := g.turn(); ok {
			c = g.playerFor(turn).Color
		}
	}
	dst.DrawTextCentered(y, status.Message, c)

	if status.GameOver {
		dst.DrawTextCentered(y+1, "press r to play again", core.ColorGray)
	}
}

// ColumnAt maps a screen position to the column drawn there. Clicks on the
// column numbers, the cursor row or the grid all count.
func (g *Game) ColumnAt(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	l := g.layout()
	top := l.top + 4
	area := core.NewRect(l.left+1, top, boardW-2, l.boardY+boardH-top)
	if !area.Contains(x, y) {
		return 0, false
	}
	return core.Clamp((x-l.left)/cellWidth, 0, engine.Width-1), true
}
