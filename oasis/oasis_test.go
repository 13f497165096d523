package oasis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/oasis"
)

var sample = []string{
	"0 3 6 9 12 15",
	"1 3 6 10 15 21",
	"10 13 16 21 30 45",
}

func TestParts(t *testing.T) {
	got, err := oasis.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 114, got)

	got, err = oasis.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestNextPrev(t *testing.T) {
	cases := []struct {
		seq        []int
		next, prev int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
		{[]int{0, 0, 0}, 0, 0},
		{[]int{-1, -4, -9, -16}, -25, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.next, oasis.Next(tc.seq), "next of %v", tc.seq)
		assert.Equal(t, tc.prev, oasis.Prev(tc.seq), "prev of %v", tc.seq)
	}
}

func TestDifferences(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 5, 6}, oasis.Differences([]int{1, 3, 6, 10, 15, 21}))
	assert.Nil(t, oasis.Differences([]int{1}))
}

func TestParseHistory_Errors(t *testing.T) {
	_, err := oasis.ParseHistory("1 two 3")
	assert.True(t, errors.Is(err, oasis.ErrMalformedHistory))

	_, err = oasis.Part1([]string{"1 2 3", "x"})
	assert.True(t, errors.Is(err, oasis.ErrMalformedHistory))
}
