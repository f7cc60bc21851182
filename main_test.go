package main

import (
	"fmt"
	"testing"

	"mancala/game"
	"mancala/meta"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("default board", func(t *testing.T) {
		board, err := parseBoard(nil)
		require.NoError(t, err)
		require.Equal(t, meta.DEFAULT_BOARD, board.String())
	})

	t.Run("separate values", func(t *testing.T) {
		board, err := parseBoard([]string{"0", "1", "1", "0", "1", "1"})
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 1, 0, 1, 1}, board.Values())
	})

	t.Run("comma-separated value", func(t *testing.T) {
		board, err := parseBoard([]string{"0,1,1,0,1,1"})
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 1, 0, 1, 1}, board.Values())
	})

	t.Run("rejecting oversized boards", func(t *testing.T) {
		args := make([]string, meta.MAX_BOARD_LEN+2)
		for i := range args {
			args[i] = "1"
		}
		_, err := parseBoard(args)
		require.Error(t, err)
	})

	t.Run("rejecting odd boards", func(t *testing.T) {
		_, err := parseBoard([]string{"1,2,3"})
		require.ErrorIs(t, err, game.ErrShape)
	})
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-m", "-r", "50", "-seed", "7", "0,1,1,0,1,1"})
	require.NoError(t, err)
	require.True(t, cfg.moveOne)
	require.False(t, cfg.moveTwo)
	require.Equal(t, 50, cfg.runs)
	require.Equal(t, uint64(7), cfg.seed)

	cfg, err = parseFlags([]string{"-seed", "0"})
	require.NoError(t, err)
	require.Equal(t, uint64(0), cfg.seed, "An explicit zero seed should be kept")

	cfg, err = parseFlags([]string{"-temperature", "0.5"})
	require.NoError(t, err)
	require.Equal(t, 0.5, cfg.temperature)
	require.NotEqual(t, fmt.Sprintf("%T", newAgent(config{runs: 1}, 1)), fmt.Sprintf("%T", newAgent(cfg, 1)),
		"A positive temperature should select a sampling agent")

	_, err = parseFlags([]string{"-temperature", "-1"})
	require.Error(t, err)
	_, err = parseFlags([]string{"-r", "0"})
	require.Error(t, err)
	_, err = parseFlags([]string{"-r", "1001"})
	require.Error(t, err)
}

func TestSuggestAndPlay(t *testing.T) {
	cfg, err := parseFlags([]string{"-r", "100", "-seed", "3", "0,1,1,0,1,1"})
	require.NoError(t, err)

	board, err := suggestAndPlay(cfg, game.One)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1, 0, 1, 1}, board.Values(), "Player one should take pot 1")

	cfg, err = parseFlags([]string{"0,0,0,0,1,1"})
	require.NoError(t, err)
	_, err = suggestAndPlay(cfg, game.One)
	require.Error(t, err)
}
