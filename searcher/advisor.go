package searcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"mancala/experiments/metrics"
	"mancala/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *Advisor)

// Advisor runs independent random playouts after each candidate move and
// averages their margins.
type Advisor struct {
	goroutines   int
	newCollector func() metrics.Collector

	mu  sync.Mutex // Guards rng
	rng *rand.Rand
}

type playout struct {
	move int // Index into the candidate moves
	seed uint64
}

const golden = 0x9e3779b97f4a7c15

func WithGoroutines(goroutines int) Option {
	return func(a *Advisor) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Advisor) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(a *Advisor) {
		a.newCollector = metrics.NewCollector
	}
}

func NewAdvisor(options ...Option) *Advisor {
	a := &Advisor{ // Default values
		goroutines:   runtime.NumCPU(),
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

// Search applies each legal move of player and averages the margins of runs
// playouts from the resulting board, other player to move. Margins are from
// player's perspective.
func (a *Advisor) Search(board game.Board, player game.Player, runs int) (map[game.Pot]float64, metrics.SearchMetric) {
	if runs < 1 {
		panic(fmt.Sprintf("runs must be at least 1, got %d", runs))
	}

	moves := board.PossibleMoves(player)
	hypotheticals := make([]game.Board, len(moves))
	for i, pot := range moves {
		next, err := board.Play(player, pot)
		if err != nil {
			panic(fmt.Sprintf("legal move rejected: %v", err))
		}
		hypotheticals[i] = next
	}

	collector := a.newCollector()
	collector.Start(a.goroutines, runs, len(moves))
	sums := a.simulate(hypotheticals, player.Other(), a.baseSeed(), runs, collector)
	metric := collector.Complete()

	averages := make(map[game.Pot]float64, len(moves))
	for i, pot := range moves {
		averages[pot] = float64(player.Sign()*sums[i]) / float64(runs)
	}

	log.Debug().
		Str("player", player.String()).
		Str("board", board.String()).
		Int("runs", runs).
		Interface("averages", averages).
		Msg("evaluated moves")

	return averages, metric
}

func (a *Advisor) EvaluateMoves(board game.Board, player game.Player, runs int) map[game.Pot]float64 {
	averages, _ := a.Search(board, player, runs)
	return averages
}

// Suggest returns the move with the highest average margin, or false if
// player has no legal move.
func (a *Advisor) Suggest(board game.Board, player game.Player, runs int) (game.Pot, bool) {
	return Best(a.EvaluateMoves(board, player, runs))
}

// baseSeed draws the seed every playout seed of one search derives from.
func (a *Advisor) baseSeed() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.rng.Uint64()
}

// playoutSeed gives playout i its own seed, independent of scheduling.
func playoutSeed(base uint64, i int) uint64 {
	z := base + uint64(i+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (a *Advisor) simulate(boards []game.Board, player game.Player, base uint64, runs int, collector metrics.Collector) []int {
	task := make(chan playout, a.goroutines)
	go func() {
		defer close(task)
		for i := 0; i < len(boards)*runs; i++ {
			task <- playout{move: i / runs, seed: playoutSeed(base, i)}
		}
	}()

	sums := make([]int, len(boards))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < a.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([]int, len(boards))
			for p := range task {
				rng := rand.New(rand.NewSource(p.seed))
				margin, plies := rollout(boards[p.move], player, rng)
				local[p.move] += margin
				collector.AddPlayout(plies)
			}

			mu.Lock()
			defer mu.Unlock()
			for move, sum := range local {
				sums[move] += sum
			}
		}()
	}

	wg.Wait()
	return sums
}
