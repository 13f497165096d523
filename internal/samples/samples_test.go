package samples_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/samples"
	"github.com/katalvlaran/aoc2023/lineio"
)

func TestLoad_CoversEveryDay(t *testing.T) {
	all, err := samples.Load()
	require.NoError(t, err)

	parts := map[int]map[int]bool{}
	for _, s := range all {
		if parts[s.Day] == nil {
			parts[s.Day] = map[int]bool{}
		}
		parts[s.Day][s.Part] = true
	}
	for day := 1; day <= 10; day++ {
		assert.True(t, parts[day][1], "day %d part 1", day)
		assert.True(t, parts[day][2], "day %d part 2", day)
	}
}

func TestForDay(t *testing.T) {
	got, err := samples.ForDay(10)
	require.NoError(t, err)
	require.Len(t, got, 5)

	first := got[0]
	assert.Equal(t, 1, first.Part)
	assert.Equal(t, 4, first.Want)
	lines, err := first.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"-L|F7", "7S-7|", "L|7||", "-L-J|", "L|-JF"}, lines)

	none, err := samples.ForDay(25)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestForDay_AliasesShareInput(t *testing.T) {
	got, err := samples.ForDay(5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Input, got[1].Input)
	lines, err := got[0].Lines()
	require.NoError(t, err)
	assert.Contains(t, lines, "", "blank separators survive")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"NoDay", "- part: 1\n  input: x\n  want: 1\n"},
		{"BadPart", "- day: 1\n  part: 3\n  input: x\n  want: 1\n"},
		{"EmptyInput", "- day: 1\n  part: 1\n  input: \"\"\n  want: 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := samples.Parse([]byte(tc.data))
			assert.True(t, errors.Is(err, samples.ErrMalformedSample), "got %v", err)
		})
	}

	_, err := samples.Parse([]byte("day: [1"))
	require.Error(t, err)

	long := "- day: 1\n  part: 1\n  input: " + strings.Repeat("x", lineio.MaxLineSize+1) + "\n  want: 1\n"
	_, err = samples.Parse([]byte(long))
	assert.True(t, errors.Is(err, samples.ErrMalformedSample), "got %v", err)
	assert.True(t, errors.Is(err, lineio.ErrLineTooLong), "got %v", err)
}
