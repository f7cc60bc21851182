package metrics

import (
	"sync/atomic"
	"time"

	"mancala/game"
)

type SearchMetric struct {
	Goroutines int
	Runs       int
	Moves      int // Candidate moves evaluated
	Playouts   int
	Plies      int // Moves played across all playouts
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Pot    game.Pot
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Margin         int    // Final margin in favour of player one
	Winner         string // "one", "two" or "draw"
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID          int
	Goroutines  int
	Runs        int
	Temperature float64 // Samples moves when positive, otherwise plays the best move
}

// Winner names the player favoured by a final margin.
func Winner(margin int) string {
	switch {
	case margin > 0:
		return game.One.String()
	case margin < 0:
		return game.Two.String()
	default:
		return "draw"
	}
}

type Collector interface {
	Start(goroutines, runs, moves int)
	AddPlayout(plies int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	runs       int
	moves      int
	startTime  time.Time
	playouts   atomic.Int64
	plies      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, runs, moves int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.runs = runs
	m.moves = moves
	m.playouts.Store(0)
	m.plies.Store(0)
}

func (m *collector) AddPlayout(plies int) {
	m.playouts.Add(1)
	m.plies.Add(int64(plies))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Runs:       m.runs,
		Moves:      m.moves,
		Playouts:   int(m.playouts.Load()),
		Plies:      int(m.plies.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, runs, moves int) {}
func (m *dummyCollector) AddPlayout(plies int)              {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
