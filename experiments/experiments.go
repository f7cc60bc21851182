package experiments

import (
	"fmt"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 10 // Per match up
	RootDir  = "experiments"
)

// Experiment describes a set of match ups between agent configurations.
type Experiment struct {
	Name     string
	Board    game.Board
	NumGames int
	Seed     uint64
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// RunBudgetExperiment pairs increasing simulation budgets against a baseline.
func RunBudgetExperiment(board game.Board, seed uint64) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 4, Runs: 100}
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: 4, Runs: 10},
		{ID: 2, Goroutines: 4, Runs: 100}, // Baseline equivalent
		{ID: 3, Goroutines: 4, Runs: 500},
		{ID: 4, Goroutines: 4, Runs: meta.MAX_RUNS},
		{ID: 5, Goroutines: 4, Runs: 100, Temperature: 1.0}, // Baseline budget, sampled moves
	}

	// Each matchup pairs the baseline agent against a budget agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run(RootDir, Experiment{
		Name:     "budget",
		Board:    board,
		NumGames: NumGames,
		Seed:     seed,
		Configs:  append(configs, baseline),
		MatchUps: matchUps,
	})
}

// RunParallelizationExperiment plays each goroutine count against itself
// for the same playing strength and similar game length.
func RunParallelizationExperiment(board game.Board, seed uint64) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: 1, Runs: meta.DEFAULT_RUNS},
		{ID: 2, Goroutines: 2, Runs: meta.DEFAULT_RUNS},
		{ID: 3, Goroutines: 4, Runs: meta.DEFAULT_RUNS},
		{ID: 4, Goroutines: 8, Runs: meta.DEFAULT_RUNS},
		{ID: 5, Goroutines: 16, Runs: meta.DEFAULT_RUNS},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Run(RootDir, Experiment{
		Name:     "parallelization",
		Board:    board,
		NumGames: NumGames,
		Seed:     seed,
		Configs:  configs,
		MatchUps: matchUps,
	})
}

// Run plays every match up and stores the records under root. It returns
// the directory the records were written to.
func Run(root string, exp Experiment) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seed := exp.Seed

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < exp.NumGames; i++ {
			// Alternate the starting player
			first := game.One
			if i%2 == 1 {
				first = game.Two
			}

			gameMetric, moveMetrics := runGame(exp.Board, matchUp, first, seed)
			seed += 2
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.MatchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(board game.Board, matchUp [2]metrics.AgentConfig, first game.Player, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]agent.Agent{
		createAgent(matchUp[0], seed),
		createAgent(matchUp[1], seed+1),
	}
	var e engine.Engine = engine.LocalEngine(board, agents, first)

	_, gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	advisor := searcher.NewAdvisor(
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
	if config.Temperature > 0 {
		return agent.NewTrainingAgent(advisor, config.Runs, config.Temperature, seed)
	}
	return agent.NewEvaluationAgent(advisor, config.Runs)
}
