package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

type Agent interface {
	// FindMove returns a move for player and performance metrics (if collected) from the simulation process
	FindMove(board game.Board, player game.Player) (game.Pot, metrics.SearchMetric)
}
