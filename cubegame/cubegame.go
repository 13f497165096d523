// Package cubegame scores games in which cubes are drawn from a bag.
//
// Each input line reads "Game <id>: <draw>; <draw>; ..." where a draw is a
// comma-separated list of "<count> <color>" with colors red, green and blue.
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for game parsing.
var (
	// ErrMalformedGame indicates a line that does not follow the game grammar.
	ErrMalformedGame = errors.New("cubegame: malformed game line")
	// ErrUnknownColor indicates a cube color other than red, green or blue.
	ErrUnknownColor = errors.New("cubegame: unknown cube color")
)

// Cubes counts cubes per color.
type Cubes struct {
	Red, Green, Blue int
}

// Fits reports whether every color count of c is within limit.
func (c Cubes) Fits(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power returns the product of the three color counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Bag is the part 1 bag content.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Game is one recorded game.
type Game struct {
	ID    int
	Draws []Cubes
}

// Minimum returns the fewest cubes of each color that make every draw possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses one input line.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing game id in %q", ErrMalformedGame, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q", ErrMalformedGame, idText)
	}

	g := Game{ID: id}
	for _, drawText := range strings.Split(body, ";") {
		d, err := parseDraw(drawText)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseDraw(text string) (Cubes, error) {
	var d Cubes
	for _, part := range strings.Split(text, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Cubes{}, fmt.Errorf("%w: cube entry %q", ErrMalformedGame, strings.TrimSpace(part))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Cubes{}, fmt.Errorf("%w: cube count %q", ErrMalformedGame, fields[0])
		}
		switch fields[1] {
		case "red":
			d.Red = n
		case "green":
			d.Green = n
		case "blue":
			d.Blue = n
		default:
			return Cubes{}, fmt.Errorf("%w: %q", ErrUnknownColor, fields[1])
		}
	}
	return d, nil
}

// ParseGames parses every line.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

// Part1 sums the IDs of games playable with Bag.
func Part1(lines []string) (int, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Minimum().Fits(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of each game's minimum cube set.
func Part2(lines []string) (int, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum, nil
}
