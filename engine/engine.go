package engine

import "mancala/experiments/metrics"

type Engine interface {
	// Run plays a game till one side is out of moves or a max number of moves is reached
	Run() (margin int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
