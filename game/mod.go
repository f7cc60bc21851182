package game

import "errors"

// Pot is a pit index relative to the acting player's side, in 1..H-1.
type Pot int

// Pos is an absolute index into the board, in 0..2H-1.
type Pos int

var (
	ErrShape         = errors.New("board length must be even and at least 4")
	ErrNegativeBeads = errors.New("pit cannot hold a negative number of beads")
	ErrInvalidMove   = errors.New("invalid move")
)
