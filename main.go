package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	board       game.Board
	moveOne     bool
	moveTwo     bool
	runs        int
	goroutines  int
	seed        uint64
	temperature float64
	verbose     bool
	experiment  string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("mancala failed")
	}
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("mancala", flag.ContinueOnError)
	moveOne := fs.Bool("m", false, "Suggest and play one move for player one, then print the board")
	moveTwo := fs.Bool("n", false, "Suggest and play one move for player two, then print the board")
	runs := fs.Int("r", meta.DEFAULT_RUNS, "Number of playouts per candidate move")
	goroutines := fs.Int("goroutines", 0, "Number of goroutines for parallel playouts (default: number of CPUs)")
	seed := fs.Uint64("seed", 0, "Random seed (default: time based)")
	temperature := fs.Float64("temperature", 0, "Sample self-play moves at this temperature instead of playing the best move")
	verbose := fs.Bool("v", false, "Log debug output, including move evaluations")
	experiment := fs.String("experiment", "", "Run an experiment instead of a game: budget or parallel")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	board, err := parseBoard(fs.Args())
	if err != nil {
		return config{}, err
	}
	if *runs < 1 || *runs > meta.MAX_RUNS {
		return config{}, fmt.Errorf("runs must be in 1..%d, got %d", meta.MAX_RUNS, *runs)
	}
	if *temperature < 0 {
		return config{}, fmt.Errorf("temperature must not be negative, got %v", *temperature)
	}
	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})
	if !seeded {
		*seed = uint64(time.Now().UnixNano())
	}

	return config{
		board:       board,
		moveOne:     *moveOne,
		moveTwo:     *moveTwo,
		runs:        *runs,
		goroutines:  *goroutines,
		seed:        *seed,
		temperature: *temperature,
		verbose:     *verbose,
		experiment:  *experiment,
	}, nil
}

// parseBoard accepts either separate values or one comma-separated argument.
func parseBoard(args []string) (game.Board, error) {
	raw := meta.DEFAULT_BOARD
	if len(args) > 0 {
		raw = strings.Join(args, ",")
	}
	board, err := game.Parse(raw)
	if err != nil {
		return game.Board{}, err
	}
	if board.Len() < meta.MIN_BOARD_LEN || board.Len() > meta.MAX_BOARD_LEN {
		return game.Board{}, fmt.Errorf("board length must be in %d..%d, got %d", meta.MIN_BOARD_LEN, meta.MAX_BOARD_LEN, board.Len())
	}
	return board, nil
}

func run(cfg config) error {
	switch cfg.experiment {
	case "":
	case "budget":
		_, err := experiments.RunBudgetExperiment(cfg.board, cfg.seed)
		return err
	case "parallel":
		_, err := experiments.RunParallelizationExperiment(cfg.board, cfg.seed)
		return err
	default:
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}

	if cfg.moveOne || cfg.moveTwo {
		player := game.One
		if !cfg.moveOne {
			player = game.Two
		}
		board, err := suggestAndPlay(cfg, player)
		if err != nil {
			return err
		}
		out, err := json.Marshal(board.Values())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	playGame(cfg)
	return nil
}

func newAdvisor(cfg config, seed uint64) *searcher.Advisor {
	return searcher.NewAdvisor(searcher.WithGoroutines(cfg.goroutines), searcher.WithSeed(seed))
}

func suggestAndPlay(cfg config, player game.Player) (game.Board, error) {
	pot, ok := newAdvisor(cfg, cfg.seed).Suggest(cfg.board, player, cfg.runs)
	if !ok {
		return game.Board{}, fmt.Errorf("player %s has no legal move on %s", player, cfg.board)
	}
	return cfg.board.Play(player, pot)
}

func newAgent(cfg config, seed uint64) agent.Agent {
	if cfg.temperature > 0 {
		return agent.NewTrainingAgent(newAdvisor(cfg, seed), cfg.runs, cfg.temperature, seed)
	}
	return agent.NewEvaluationAgent(newAdvisor(cfg, seed), cfg.runs)
}

func printBoard(board game.Board) {
	fmt.Println()
	fmt.Println(strings.Repeat("*", 40))
	fmt.Println(board.PotLabels(game.One))
	fmt.Println(board.Pretty())
	fmt.Println(board.PotLabels(game.Two))
}

func playGame(cfg config) {
	agents := [2]agent.Agent{newAgent(cfg, cfg.seed), newAgent(cfg, cfg.seed+1)}
	printBoard(cfg.board)
	e := engine.LocalEngine(cfg.board, agents, game.One, engine.WithObserver(func(turn engine.Turn) {
		fmt.Printf("p%d picks up from pot %d\n", turn.Player, turn.Pot)
		printBoard(turn.Board)
	}))
	e.Run()

	fmt.Printf("Score: %d : %d\n", e.Board.Score(game.One), e.Board.Score(game.Two))
}
