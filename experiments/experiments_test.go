package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"mancala/experiments/metrics"
	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	board, err := game.Parse("0,2,2,2,0,2,2,2")
	require.NoError(t, err)
	small := metrics.AgentConfig{ID: 1, Goroutines: 2, Runs: 5}
	large := metrics.AgentConfig{ID: 2, Goroutines: 2, Runs: 20, Temperature: 0.5}

	dir, err := Run(t.TempDir(), Experiment{
		Name:     "test",
		Board:    board,
		NumGames: 2,
		Seed:     1,
		Configs:  []metrics.AgentConfig{small, large},
		MatchUps: [][2]metrics.AgentConfig{{small, large}},
	})
	require.NoError(t, err)

	for file, rows := range map[string]int{"agent_configs.csv": 3, "game_records.csv": 3} {
		f, err := os.Open(filepath.Join(dir, file))
		require.NoError(t, err)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, records, rows, "%s should have a header and one row per record", file)
	}

	f, err := os.Open(filepath.Join(dir, "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, "one", records[1][3], "First game should start with player one")
	require.Equal(t, "two", records[2][3], "Second game should start with player two")

	_, err = os.Stat(filepath.Join(dir, "move_records.csv"))
	require.NoError(t, err)
}

func TestCreateAgent(t *testing.T) {
	board, err := game.Parse("0,3,0,3,0,3,3,0,3,3,3,3,0,0")
	require.NoError(t, err)

	best := createAgent(metrics.AgentConfig{ID: 1, Goroutines: 1, Runs: 10}, 1)
	sampling := createAgent(metrics.AgentConfig{ID: 2, Goroutines: 1, Runs: 10, Temperature: 1.0}, 1)
	require.NotEqual(t, fmt.Sprintf("%T", best), fmt.Sprintf("%T", sampling), "Temperature should select a sampling agent")

	for i := 0; i < 5; i++ {
		pot, metric := sampling.FindMove(board, game.One)
		require.Contains(t, board.PossibleMoves(game.One), pot)
		require.Equal(t, 10, metric.Runs)
	}
}
