package searcher

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

// Searcher estimates how favourable each legal move is for a player.
type Searcher interface {
	Search(board game.Board, player game.Player, runs int) (map[game.Pot]float64, metrics.SearchMetric)
}

// Best returns the pot with the highest average margin, preferring the
// highest pot on ties.
func Best(averages map[game.Pot]float64) (game.Pot, bool) {
	var bestPot game.Pot
	found := false
	for pot, average := range averages {
		if !found || average > averages[bestPot] || (average == averages[bestPot] && pot > bestPot) {
			bestPot = pot
			found = true
		}
	}
	return bestPot, found
}
