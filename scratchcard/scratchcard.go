// Package scratchcard scores scratchcards and resolves won copies.
//
// Each line reads "Card <id>: <winning numbers> | <numbers you have>".
package scratchcard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCard indicates a line that does not follow the card grammar.
var ErrMalformedCard = errors.New("scratchcard: malformed card line")

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches returns how many of the numbers you have are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = struct{}{}
	}
	m := 0
	for _, n := range c.Have {
		if _, ok := win[n]; ok {
			m++
		}
	}
	return m
}

// Score is 1 for the first match, doubled for every further match.
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseNumbers(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrMalformedCard, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseCard parses one input line.
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: header %q", ErrMalformedCard, head)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: card id %q", ErrMalformedCard, fields[1])
	}
	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' in card %d", ErrMalformedCard, id)
	}
	c := Card{ID: id}
	if c.Winning, err = parseNumbers(winText); err != nil {
		return Card{}, err
	}
	if c.Have, err = parseNumbers(haveText); err != nil {
		return Card{}, err
	}
	return c, nil
}

// ParseCards parses every line.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Copies returns how many instances of each card end up held. A card with m
// matches wins one copy of each of the next m cards per instance held;
// wins past the end of the table are dropped.
func Copies(cards []Card) []int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

// Part1 sums card scores.
func Part1(lines []string) (int, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Score()
	}
	return sum, nil
}

// Part2 counts every card instance held after all wins resolve.
func Part2(lines []string) (int, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range Copies(cards) {
		total += n
	}
	return total, nil
}
