package searcher

import (
	"fmt"

	"mancala/game"

	"golang.org/x/exp/rand"
)

// Playout plays uniformly random moves from board, player to move first,
// until one side is out of moves, and returns the final margin for player one.
func Playout(board game.Board, player game.Player, rng *rand.Rand) int {
	margin, _ := rollout(board, player, rng)
	return margin
}

func rollout(board game.Board, player game.Player, rng *rand.Rand) (margin int, plies int) {
	for {
		// The game ends once either side is empty, the waiting side checked first
		if !board.HasMoves(player.Other()) {
			return board.Margin(), plies
		}
		moves := board.PossibleMoves(player)
		if len(moves) == 0 {
			return board.Margin(), plies
		}

		move := moves[rng.Intn(len(moves))] // Random rollout policy
		next, err := board.Play(player, move)
		if err != nil {
			panic(fmt.Sprintf("rollout played an illegal move: %v", err))
		}
		board = next
		player = player.Other()
		plies++
	}
}
