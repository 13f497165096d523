package schematic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/schematic"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParse_Numbers(t *testing.T) {
	s, err := schematic.Parse(sample)
	require.NoError(t, err)
	require.Len(t, s.Numbers, 10)
	assert.Equal(t, schematic.Number{Value: 467, Row: 0, Start: 0, End: 2}, s.Numbers[0])
	assert.Equal(t, schematic.Number{Value: 114, Row: 0, Start: 5, End: 7}, s.Numbers[1])
	assert.Equal(t, schematic.Number{Value: 598, Row: 9, Start: 5, End: 7}, s.Numbers[9])
}

func TestParse_NumberAtRowEnd(t *testing.T) {
	s, err := schematic.Parse([]string{"..12", "*..."})
	require.NoError(t, err)
	require.Len(t, s.Numbers, 1)
	assert.Equal(t, 3, s.Numbers[0].End)
	assert.Empty(t, s.PartNumbers(), "the symbol is two columns away")
}

func TestParse_Ragged(t *testing.T) {
	_, err := schematic.Parse([]string{"12.", "*"})
	assert.True(t, errors.Is(err, grid.ErrNonRectangular))
}

func TestAdjacent(t *testing.T) {
	s, err := schematic.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 3, Y: 1}}, s.Adjacent(s.Numbers[0]))
	assert.Empty(t, s.Adjacent(s.Numbers[1]))
}

func TestGearRatios(t *testing.T) {
	s, err := schematic.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{16345, 451490}, s.GearRatios())
}

func TestParts(t *testing.T) {
	p1, err := schematic.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 4361, p1)

	p2, err := schematic.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 467835, p2)
}
