package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
)

type evaluationAgent struct {
	searcher searcher.Searcher
	runs     int
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(s searcher.Searcher, runs int) Agent {
	return evaluationAgent{searcher: s, runs: runs}
}

func (a evaluationAgent) FindMove(board game.Board, player game.Player) (game.Pot, metrics.SearchMetric) {
	averages, metric := a.searcher.Search(board, player, a.runs)
	return findMax(averages), metric
}

func findMax(averages map[game.Pot]float64) game.Pot {
	pot, ok := searcher.Best(averages)
	if !ok {
		panic("no legal moves to choose from")
	}
	return pot
}
