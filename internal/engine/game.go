package engine

import "fmt"

// Status is the lifecycle state of a game.
type Status uint8

const (
	InProgress Status = iota
	Won
	Tied
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == Won || s == Tied
}

// GameState is a complete, self-contained game. It is a value: ApplyMove never
// modifies the receiver and returns a new state instead.
type GameState struct {
	Board   Board
	Active  Player // player to move; after a win, the winner
	Status  Status
	Winner  Player // set when Status is Won
	WinLine Line   // set when Status is Won
	Moves   int    // accepted moves so far
	Last    Position
	HasLast bool
}

// NewGame returns a fresh game with an empty standard board and Player1 to move.
func NewGame() GameState {
	return GameState{
		Board:  newStandardBoard(),
		Active: Player1,
		Status: InProgress,
	}
}

// ResetGame is equivalent to NewGame.
func ResetGame() GameState {
	return NewGame()
}

// IsTerminal reports whether the game has ended.
func (s GameState) IsTerminal() bool {
	return s.Status.Terminal()
}

// Outcome classifies the result of a move attempt.
type Outcome uint8

const (
	Rejected Outcome = iota
	Continued
	WonGame
	TiedGame
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Continued:
		return "continued"
	case WonGame:
		return "won"
	case TiedGame:
		return "tied"
	default:
		return "unknown"
	}
}

// MoveResult describes what ApplyMove did.
type MoveResult struct {
	Outcome Outcome
	Reason  error  // Rejected only
	Mover   Player // player whose turn it was
	Row     int    // landing row, -1 when rejected
	Column  int
	Next    Player // Continued only: the new active player
	Winner  Player // WonGame only
	Line    Line   // WonGame only
}

// Accepted reports whether the move changed the game.
func (r MoveResult) Accepted() bool {
	return r.Outcome != Rejected
}

// ApplyMove drops a piece for the active player into column and returns the
// resulting state. Rejected moves return the receiver unchanged.
func (s GameState) ApplyMove(column int) (GameState, MoveResult) {
	res := MoveResult{Mover: s.Active, Row: -1, Column: column}

	if s.IsTerminal() {
		res.Reason = ErrMoveAfterGameOver
		return s, res
	}
	if column < 0 || column >= s.Board.Width() {
		res.Reason = fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, column, s.Board.Width())
		return s, res
	}
	row, ok := s.Board.LandingRow(column)
	if !ok {
		res.Reason = fmt.Errorf("%w: %d", ErrColumnFull, column)
		return s, res
	}

	next := s
	next.Board = s.Board.Clone()
	next.Board.Place(row, column, s.Active)
	next.Moves++
	next.Last = Position{Row: row, Col: column}
	next.HasLast = true
	res.Row = row

	if line, won := FindWin(next.Board, s.Active); won {
		next.Status = Won
		next.Winner = s.Active
		next.WinLine = line
		res.Outcome = WonGame
		res.Winner = s.Active
		res.Line = line
		return next, res
	}

	if CheckFilledBoard(next.Board) {
		next.Status = Tied
		res.Outcome = TiedGame
		return next, res
	}

	next.Active = s.Active.Other()
	res.Outcome = Continued
	res.Next = next.Active
	return next, res
}
