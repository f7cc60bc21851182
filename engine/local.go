package engine

import (
	"fmt"
	"time"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalGame)

// Turn describes a move that has just been applied.
type Turn struct {
	Step   int
	Player game.Player
	Pot    game.Pot
	Board  game.Board // Board after the move
}

type LocalGame struct {
	Board    game.Board
	ToMove   game.Player
	agents   [2]agent.Agent
	maxMoves int
	observer func(Turn)
}

func WithObserver(observer func(Turn)) Option {
	return func(e *LocalGame) {
		e.observer = observer
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *LocalGame) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// LocalEngine plays agents[0] as player one against agents[1] as player two.
func LocalEngine(board game.Board, agents [2]agent.Agent, first game.Player, options ...Option) *LocalGame {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d is missing", i+1))
		}
	}
	e := &LocalGame{
		Board:    board,
		ToMove:   first,
		agents:   agents,
		maxMoves: meta.MAX_TURNS,
		observer: func(Turn) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until one side is out of moves.
func (e *LocalGame) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.ToMove,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting on %s", e.ToMove, e.Board)

	step := 1
	for !e.Board.Over() && step <= e.maxMoves {
		player := e.ToMove
		pot, searchMetric := e.agents[player-1].FindMove(e.Board, player)

		next, err := e.Board.Play(player, pot)
		if err != nil {
			panic(fmt.Sprintf("agent for player %s chose an invalid move: %v", player, err))
		}
		e.Board = next
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Pot:          pot,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %s picks up from pot %d -> %s", step, player, pot, e.Board)
		e.observer(Turn{Step: step, Player: player, Pot: pot, Board: e.Board})

		e.ToMove = player.Other()
		step++
	}

	if !e.Board.Over() {
		log.Warn().Msgf("stopped after %d moves (game not over)", e.maxMoves)
	}

	margin := e.Board.Margin()
	gameMetric.Margin = margin
	gameMetric.Winner = metrics.Winner(margin)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves with margin %d", len(moveMetrics), margin)
	return margin, gameMetric, moveMetrics
}
