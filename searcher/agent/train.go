package agent

import (
	"math"
	"sort"
	"sync"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	searcher    searcher.Searcher
	runs        int
	temperature float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training.
func NewTrainingAgent(s searcher.Searcher, runs int, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		searcher:    s,
		runs:        runs,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(board game.Board, player game.Player) (game.Pot, metrics.SearchMetric) {
	averages, metric := a.searcher.Search(board, player, a.runs)
	policy := adjustTemperature(averages, a.temperature)

	a.mu.Lock()
	defer a.mu.Unlock()
	return sample(policy, a.rng.Float64()), metric
}

// adjustTemperature turns average margins into move probabilities with a softmax.
func adjustTemperature(averages map[game.Pot]float64, temperature float64) map[game.Pot]float64 {
	if len(averages) == 0 {
		panic("no legal moves to choose from")
	}
	maxAverage := math.Inf(-1)
	for _, average := range averages {
		maxAverage = math.Max(maxAverage, average)
	}

	sum := 0.0
	adjusted := make(map[game.Pot]float64, len(averages))
	for pot, average := range averages {
		prob := math.Exp((average - maxAverage) / temperature)
		sum += prob
		adjusted[pot] = prob
	}
	// Normalize
	for pot := range adjusted {
		adjusted[pot] /= sum
	}
	return adjusted
}

func sample(policy map[game.Pot]float64, sampled float64) game.Pot {
	// Walk pots in order so a given draw always maps to the same pot
	pots := make([]game.Pot, 0, len(policy))
	for pot := range policy {
		pots = append(pots, pot)
	}
	sort.Slice(pots, func(i, j int) bool { return pots[i] < pots[j] })

	cumulative := 0.0
	for _, pot := range pots {
		cumulative += policy[pot]
		if sampled < cumulative {
			return pot
		}
	}
	return pots[len(pots)-1] // Fallback in case of rounding errors
}
