package cubegame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/cubegame"
)

var sample = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestParseGame(t *testing.T) {
	g, err := cubegame.ParseGame(sample[0])
	require.NoError(t, err)
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, []cubegame.Cubes{
		{Red: 4, Blue: 3},
		{Red: 1, Green: 2, Blue: 6},
		{Green: 2},
	}, g.Draws)
	assert.Equal(t, cubegame.Cubes{Red: 4, Green: 2, Blue: 6}, g.Minimum())
	assert.Equal(t, 48, g.Minimum().Power())
}

func TestParseGame_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		err  error
	}{
		{"NoColon", "Game 1 3 blue", cubegame.ErrMalformedGame},
		{"NoID", "Round 1: 3 blue", cubegame.ErrMalformedGame},
		{"BadCount", "Game 1: x blue", cubegame.ErrMalformedGame},
		{"BadColor", "Game 1: 3 purple", cubegame.ErrUnknownColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cubegame.ParseGame(tc.line)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestParts(t *testing.T) {
	p1, err := cubegame.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 8, p1)

	p2, err := cubegame.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2286, p2)
}
