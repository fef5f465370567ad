package connect4

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

// newGame returns a game on an 80x24 screen with the given drop speed.
func newGame(t *testing.T, dropTicks int) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Display.DropTicksPerRow = dropTicks

	g := New(cfg, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func columnFrame(col int) core.InputFrame {
	in := core.NewInputFrame()
	in.SetColumn(col)
	return in
}

// idle steps the game n times without input.
func idle(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestNewGameStartsWithPlayer1(t *testing.T) {
	g := newGame(t, 0)

	snap := g.Snapshot()
	if snap.Active != engine.Player1 {
		t.Errorf("Active = %v, expected Player 1", snap.Active)
	}
	if snap.Cursor != engine.Width/2 {
		t.Errorf("Cursor = %d, expected %d", snap.Cursor, engine.Width/2)
	}
	if snap.Message != "Player 1's turn" {
		t.Errorf("Message = %q, expected %q", snap.Message, "Player 1's turn")
	}
	if g.ID() != "connect4" || g.Title() != "Connect Four" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestSelectColumnAlternatesPlayers(t *testing.T) {
	g := newGame(t, 0)

	res := g.SelectColumn(3)
	if res.Outcome != engine.Continued {
		t.Fatalf("SelectColumn(3) outcome = %v, expected continued", res.Outcome)
	}
	if g.State().Active != engine.Player2 {
		t.Errorf("Active = %v, expected Player 2", g.State().Active)
	}

	res = g.SelectColumn(3)
	if res.Row != engine.Height-2 {
		t.Errorf("second piece row = %d, expected %d", res.Row, engine.Height-2)
	}
	if g.State().Active != engine.Player1 {
		t.Errorf("Active = %v, expected Player 1", g.State().Active)
	}
}

func TestCursorMovesAndWraps(t *testing.T) {
	g := newGame(t, 0)

	tests := []struct {
		action core.Action
		want   int
	}{
		{core.ActionLeft, 2},
		{core.ActionLeft, 1},
		{core.ActionLeft, 0},
		{core.ActionLeft, 6},
		{core.ActionRight, 0},
		{core.ActionRight, 1},
	}

	for i, tc := range tests {
		g.Step(frame(tc.action))
		if g.Cursor() != tc.want {
			t.Errorf("step %d: Cursor() = %d, expected %d", i, g.Cursor(), tc.want)
		}
	}
	if g.State().Moves != 0 {
		t.Errorf("moving the cursor should not place pieces, got %d moves", g.State().Moves)
	}
}

func TestDropAtCursor(t *testing.T) {
	g := newGame(t, 0)

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionDrop))

	if got := g.State().Board.At(engine.Height-1, 4); got != engine.Occupied(engine.Player1) {
		t.Errorf("cell (5, 4) = %v, expected Player 1's piece", got)
	}
}

func TestColumnDigitDropsDirectly(t *testing.T) {
	g := newGame(t, 0)

	g.Step(columnFrame(6))

	if g.Cursor() != 6 {
		t.Errorf("Cursor() = %d, expected 6", g.Cursor())
	}
	if got := g.State().Board.At(engine.Height-1, 6); got != engine.Occupied(engine.Player1) {
		t.Errorf("cell (5, 6) = %v, expected Player 1's piece", got)
	}
}

func TestRejectedMoveShowsNotice(t *testing.T) {
	g := newGame(t, 0)
	for i := 0; i < engine.Height; i++ {
		if res := g.SelectColumn(0); !res.Accepted() {
			t.Fatalf("move %d rejected: %v", i, res.Reason)
		}
	}
	before := g.Snapshot()

	res := g.SelectColumn(0)

	if res.Accepted() {
		t.Fatal("dropping into a full column should be rejected")
	}
	after := g.Snapshot()
	if after.Board != before.Board || after.Active != before.Active {
		t.Error("rejected move changed the game")
	}
	if after.Message != "Column 1 is full" {
		t.Errorf("Message = %q, expected %q", after.Message, "Column 1 is full")
	}

	// The notice goes away after a while
	idle(g, noticeSeconds*60)
	if msg := g.Status().Message; msg != "Player 1's turn" {
		t.Errorf("Message after timeout = %q, expected the turn prompt", msg)
	}
}

func TestRejectionNotices(t *testing.T) {
	tests := []struct {
		name   string
		column int
		reason error
		want   string
	}{
		{"full", 2, engine.ErrColumnFull, "Column 3 is full"},
		{"invalid", 8, engine.ErrInvalidColumn, "There is no column 9"},
		{"game over", 0, engine.ErrMoveAfterGameOver, "The game is over, press r to play again"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rejectionNotice(tc.column, tc.reason); got != tc.want {
				t.Errorf("rejectionNotice() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestWinBanner(t *testing.T) {
	g := newGame(t, 0)
	for _, col := range []int{0, 6, 0, 6, 0, 6, 0} {
		g.SelectColumn(col)
	}

	status := g.Status()
	if !status.GameOver {
		t.Fatal("expected game over after four in a column")
	}
	if status.Message != "Player 1 wins!" {
		t.Errorf("Message = %q, expected %q", status.Message, "Player 1 wins!")
	}

	// Further moves are refused
	if res := g.SelectColumn(3); res.Accepted() {
		t.Error("move after the win should be rejected")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if strings.Count(out, "[●]") != engine.ConnectN {
		t.Errorf("expected %d highlighted pieces, got %d:\n%s", engine.ConnectN, strings.Count(out, "[●]"), out)
	}
	if !strings.Contains(out, "★ ● Player 1") {
		t.Errorf("expected the winner to be marked:\n%s", out)
	}
	if !strings.Contains(out, "press r to play again") {
		t.Errorf("expected the restart hint:\n%s", out)
	}
}

func TestDropAnimationBlocksInput(t *testing.T) {
	const perRow = 2
	g := newGame(t, perRow)

	g.Step(columnFrame(3))
	if !g.Status().Busy {
		t.Fatal("expected the piece to be falling")
	}
	// The engine already has the piece
	if g.State().Moves != 1 {
		t.Fatalf("Moves = %d, expected 1", g.State().Moves)
	}

	// Input is ignored while falling
	g.Step(frame(core.ActionDrop))
	g.Step(frame(core.ActionLeft))
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d while falling, expected 1", g.State().Moves)
	}
	if g.Cursor() != 3 {
		t.Errorf("Cursor() = %d while falling, expected 3", g.Cursor())
	}
	// The falling piece still belongs to Player 1's turn on screen
	if msg := g.Status().Message; msg != "Player 1's turn" {
		t.Errorf("Message while falling = %q, expected Player 1's turn", msg)
	}

	idle(g, perRow*engine.Height)
	if g.Status().Busy {
		t.Fatal("expected the piece to have landed")
	}

	g.Step(frame(core.ActionDrop))
	if g.State().Moves != 2 {
		t.Errorf("Moves = %d after landing, expected 2", g.State().Moves)
	}
}

func TestDropAnimationRows(t *testing.T) {
	g := newGame(t, 1)
	g.SelectColumn(0)

	// One row per tick: rows 1..4 while falling, then landed at row 5
	for want := 1; want < engine.Height-1; want++ {
		g.Step(core.NewInputFrame())
		if snap := g.Snapshot(); snap.DropRow != want {
			t.Fatalf("DropRow = %d, expected %d", snap.DropRow, want)
		}
	}
	g.Step(core.NewInputFrame())
	if snap := g.Snapshot(); snap.Dropping {
		t.Errorf("expected the piece to have landed, DropRow = %d", snap.DropRow)
	}
}

func TestWinBannerWaitsForLanding(t *testing.T) {
	g := newGame(t, 3)
	for _, col := range []int{0, 6, 0, 6, 0, 6, 0} {
		g.SelectColumn(col)
	}

	if g.State().Status != engine.Won {
		t.Fatalf("engine status = %v, expected won", g.State().Status)
	}
	if g.Status().GameOver {
		t.Error("game over should wait for the winning piece to land")
	}

	idle(g, 3*engine.Height)
	if !g.Status().GameOver {
		t.Error("expected game over once the piece landed")
	}
}

func TestRestartAtAnyTime(t *testing.T) {
	g := newGame(t, 2)
	g.SelectColumn(1)
	g.SelectColumn(2)

	// Even mid-animation
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Dropping || snap.Active != engine.Player1 {
		t.Errorf("after restart: %+v", snap)
	}
	if snap.Board != engine.NewGame().Board.String() {
		t.Errorf("board not cleared:\n%s", snap.Board)
	}
}

func TestDontButtonWarnsThenResets(t *testing.T) {
	g := newGame(t, 0)
	g.SelectColumn(3)
	g.SelectColumn(4)
	warnings := config.Default().Dont.Warnings

	for i, want := range warnings {
		msg, reset := g.PressDont()
		if reset {
			t.Fatalf("press %d reset the game early", i+1)
		}
		if msg != want {
			t.Errorf("press %d = %q, expected %q", i+1, msg, want)
		}
		if g.State().Moves != 2 {
			t.Errorf("press %d changed the board", i+1)
		}
	}

	_, reset := g.PressDont()
	if !reset {
		t.Fatal("expected a reset once the warnings ran out")
	}
	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after reset, expected 0", snap.Moves)
	}
	if snap.DontPresses != 0 {
		t.Errorf("DontPresses = %d after reset, expected 0", snap.DontPresses)
	}

	// The sequence starts over
	if msg, _ := g.PressDont(); msg != warnings[0] {
		t.Errorf("first press after reset = %q, expected %q", msg, warnings[0])
	}
}

func TestDontButtonViaStep(t *testing.T) {
	g := newGame(t, 0)

	g.Step(frame(core.ActionDont))

	if msg := g.Status().Message; msg != "Don't press that." {
		t.Errorf("Message = %q, expected the first warning", msg)
	}
}

func TestDontButtonWithoutWarnings(t *testing.T) {
	d := NewDontButton(nil)

	msg, reset := d.Press()
	if !reset || msg != "" {
		t.Errorf("Press() = %q, %v; expected an immediate reset", msg, reset)
	}
}

func TestTooSmall(t *testing.T) {
	g := newGame(t, 0)
	g.Resize(20, 10)

	g.Step(frame(core.ActionDrop))
	if g.State().Moves != 0 {
		t.Error("input should be ignored while the terminal is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected the too-small notice:\n%s", screen.String())
	}

	// Growing the terminal keeps the game
	g.SelectColumn(2)
	g.Resize(80, 24)
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d after resize, expected 1", g.State().Moves)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t, 0)
	g.SelectColumn(3)
	g.SelectColumn(3)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	l := g.layout()

	x, y := l.cellPos(engine.Height-1, 3)
	if got := screen.GetCell(x, y); got.Rune != '●' || got.Color != core.ColorRed {
		t.Errorf("bottom piece = %+v, expected red ●", got)
	}
	x, y = l.cellPos(engine.Height-2, 3)
	if got := screen.GetCell(x, y); got.Rune != '●' || got.Color != core.ColorYellow {
		t.Errorf("second piece = %+v, expected yellow ●", got)
	}

	// Grid corners
	if got := screen.Get(l.left, l.boardY); got != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", got)
	}
	if got := screen.Get(l.left+boardW-1, l.boardY+boardH-1); got != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", got)
	}

	// Player 1 to move again: marker and cursor
	out := screen.String()
	if !strings.Contains(out, "▶ ● Player 1") {
		t.Errorf("expected Player 1 to glow:\n%s", out)
	}
	cx, _ := l.cellPos(0, g.Cursor())
	if got := screen.GetCell(cx, l.top+5); got.Rune != '▼' || got.Color != core.ColorRed {
		t.Errorf("cursor = %+v, expected red ▼", got)
	}
}

func TestRenderHidesLandingCellWhileFalling(t *testing.T) {
	g := newGame(t, 4)
	g.SelectColumn(0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	l := g.layout()

	x, y := l.cellPos(engine.Height-1, 0)
	if got := screen.Get(x, y); got == '●' {
		t.Error("landing cell should stay empty while the piece falls")
	}
	x, y = l.cellPos(0, 0)
	if got := screen.Get(x, y); got != '●' {
		t.Errorf("falling piece not drawn on the top row, got %q", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games fed the same inputs end in the same state
	g1 := newGame(t, 1)
	g2 := newGame(t, 1)

	inputs := []core.InputFrame{
		frame(core.ActionDrop),
		frame(core.ActionLeft),
		columnFrame(5),
		frame(core.ActionDont),
		frame(core.ActionRight),
		frame(core.ActionDrop),
	}
	for i := 0; i < 200; i++ {
		in := inputs[i%len(inputs)]
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestColumnAt(t *testing.T) {
	g := newGame(t, 0)
	l := g.layout()

	for col := 0; col < engine.Width; col++ {
		x, y := l.cellPos(engine.Height-1, col)
		got, ok := g.ColumnAt(x, y)
		if !ok || got != col {
			t.Errorf("ColumnAt(cell of column %d) = %d, %v", col, got, ok)
		}
	}

	if _, ok := g.ColumnAt(l.left, l.boardY+1); ok {
		t.Error("the left border should not map to a column")
	}
	if _, ok := g.ColumnAt(l.left+2, l.top); ok {
		t.Error("the title row should not map to a column")
	}
}
