package engine

import "errors"

// Move rejections. They are returned as MoveResult.Reason, possibly wrapped
// with the offending column, so callers should compare with errors.Is.
var (
	ErrInvalidColumn     = errors.New("invalid column")
	ErrColumnFull        = errors.New("column is full")
	ErrMoveAfterGameOver = errors.New("game is already over")
)

// ErrInvalidDimensions is returned by NewBoard for non-positive sizes.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")
