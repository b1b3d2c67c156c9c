package chessmg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidMove     = errors.New("invalid move text")
	ErrNoHistory       = errors.New("no move to undo")
)

// ParseError reports a malformed serialized position.
type ParseError struct {
	Field  string // record field, e.g. "placement" or "en passant"
	Input  string // offending text
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid position: %s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidPosition }

// IllegalMoveError reports a move that is not in the legal move set of the
// position it was offered to. The position is left untouched.
type IllegalMoveError struct {
	Move     Move
	Position string // serialized position the move was rejected in
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s in %s", e.Move, e.Position)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// OutOfRangeError is raised (by panic) when a square coordinate falls
// outside the board. It signals a programming error, never bad input.
type OutOfRangeError struct {
	Rank, File int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("square out of range: rank %d file %d", e.Rank, e.File)
}
