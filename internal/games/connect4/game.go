// Package connect4 drives an engine game from the terminal: it owns the column
// cursor, the falling-piece animation, banners and the "don't" button, and
// draws everything onto a core.Screen.
package connect4

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

// noticeSeconds is how long a short notice stays up.
const noticeSeconds = 2

// player is how one side is shown on screen.
type player struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Game implements the terminal Connect Four game.
type Game struct {
	state  engine.GameState
	logger *log.Logger

	players [2]player
	dont    DontButton

	tick   uint64
	cursor int

	drop            *fallingPiece
	dropTicksPerRow int

	notice      string
	noticeTicks int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int
	tooSmall bool
}

// New creates a game using the player, display and warning settings of cfg.
// A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		state:           engine.NewGame(),
		logger:          logger,
		dont:            NewDontButton(cfg.Dont.Warnings),
		dropTicksPerRow: cfg.Display.DropTicksPerRow,
		cursor:          engine.Width / 2,
	}
	for i := range g.players {
		pc := cfg.Player(i + 1)
		g.players[i] = player{
			Name:  pc.Name,
			Glyph: pc.GlyphRune(),
			Color: pc.ColorValue(),
		}
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "connect4"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Connect Four"
}

// Reset starts a fresh game. This is the reset button.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = engine.ResetGame()
	g.tick = 0
	g.cursor = engine.Width / 2
	g.drop = nil
	g.notice = ""
	g.noticeTicks = 0
	g.dont.Clear()

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// State returns the engine state of the current game.
func (g *Game) State() engine.GameState {
	return g.state
}

// Cursor returns the zero-based column under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	// Reset works in every state
	if in.Has(core.ActionRestart) {
		g.logger.Info("game reset", "moves", g.state.Moves)
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: g.tickRate})
		return core.StepResult{Status: g.Status()}
	}

	if g.tooSmall {
		return core.StepResult{Status: g.Status()}
	}

	// Everything else waits for the falling piece
	if g.updateDrop() {
		return core.StepResult{Status: g.Status()}
	}

	if in.Has(core.ActionDont) {
		g.PressDont()
		return core.StepResult{Status: g.Status()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, engine.Width)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, engine.Width)
	}

	switch {
	case in.Has(core.ActionColumn):
		if in.Column >= 0 && in.Column < engine.Width {
			g.cursor = in.Column
		}
		g.SelectColumn(in.Column)
	case in.Has(core.ActionDrop):
		g.SelectColumn(g.cursor)
	}

	return core.StepResult{Status: g.Status()}
}

// SelectColumn drops a piece for the active player into column.
// Rejected moves leave the game unchanged and raise a notice.
func (g *Game) SelectColumn(column int) engine.MoveResult {
	// A piece still in the air lands immediately
	g.drop = nil

	next, res := g.state.ApplyMove(column)
	if !res.Accepted() {
		g.logger.Debug("move rejected", "player", res.Mover, "column", column, "reason", res.Reason)
		g.setNotice(rejectionNotice(column, res.Reason))
		return res
	}

	g.state = next
	g.notice = ""
	g.noticeTicks = 0
	g.logger.Debug("move", "player", res.Mover, "column", res.Column, "row", res.Row)
	g.startDrop(res.Mover, res.Row, res.Column)

	switch res.Outcome {
	case engine.WonGame:
		g.logger.Info("game won", "winner", g.playerFor(res.Winner).Name, "moves", g.state.Moves)
	case engine.TiedGame:
		g.logger.Info("game tied", "moves", g.state.Moves)
	}
	return res
}

// PressDont presses the "don't" button. It returns the warning shown, or
// reset=true when the warnings were exhausted and the game started over.
func (g *Game) PressDont() (message string, reset bool) {
	message, reset = g.dont.Press()
	if reset {
		g.logger.Info("don't button pressed one time too many, resetting")
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: g.tickRate})
		message = "Fine. Board cleared."
	}
	g.setNotice(message)
	return message, reset
}

// Status reports the game state to the platform.
func (g *Game) Status() core.Status {
	return core.Status{
		GameOver: g.state.IsTerminal() && !g.dropping(),
		Busy:     g.dropping(),
		Message:  g.banner(),
	}
}

// banner is the line shown under the board.
func (g *Game) banner() string {
	if !g.dropping() {
		switch g.state.Status {
		case engine.Won:
			return g.playerFor(g.state.Winner).Name + " wins!"
		case engine.Tied:
			return "It's a tie!"
		}
	}
	if g.notice != "" {
		return g.notice
	}
	if turn, ok := g.turn(); ok {
		return g.playerFor(turn).Name + "'s turn"
	}
	return ""
}

// turn returns the player shown as moving. While a piece falls that is still
// its owner; once the game is over on screen there is none.
func (g *Game) turn() (engine.Player, bool) {
	if g.dropping() {
		return g.drop.Player, true
	}
	if g.state.IsTerminal() {
		return engine.NoPlayer, false
	}
	return g.state.Active, true
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTicks = noticeSeconds * g.tickRate
}

// playerFor returns the display settings of p.
func (g *Game) playerFor(p engine.Player) player {
	switch p {
	case engine.Player1:
		return g.players[0]
	case engine.Player2:
		return g.players[1]
	default:
		return player{Name: "Nobody", Glyph: ' '}
	}
}

// rejectionNotice turns a rejection reason into a message for the players.
// Columns are shown one-based, as on screen.
func rejectionNotice(column int, reason error) string {
	switch {
	case errors.Is(reason, engine.ErrColumnFull):
		return fmt.Sprintf("Column %d is full", column+1)
	case errors.Is(reason, engine.ErrInvalidColumn):
		return fmt.Sprintf("There is no column %d", column+1)
	case errors.Is(reason, engine.ErrMoveAfterGameOver):
		return "The game is over, press r to play again"
	default:
		return "Move rejected"
	}
}
