// Package camelcards ranks Camel Cards hands and totals their winnings.
//
// Hands are ordered first by type, then card by card from the left. With
// jokers enabled, J is the weakest card and acts as whichever label makes the
// strongest type.
package camelcards

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedHand indicates a line that is not "<5 cards> <bid>".
var ErrMalformedHand = errors.New("camelcards: malformed hand")

// HandSize is the number of cards per hand.
const HandSize = 5

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
	joker      = 'J'
)

// Type classifies a hand.
type Type int

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var typeNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Type returns the hand type, treating J as a wildcard when jokers is set.
func (h Hand) Type(jokers bool) Type {
	counts := make(map[rune]int, HandSize)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == joker {
			wild++
			continue
		}
		counts[c]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	if len(sizes) == 0 {
		return FiveOfAKind
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return FiveOfAKind
	case sizes[0] == 4:
		return FourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse
	case sizes[0] == 3:
		return ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair
	case sizes[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders a and b by strength: negative when a is weaker.
func Compare(a, b Hand, jokers bool) int {
	if d := int(a.Type(jokers)) - int(b.Type(jokers)); d != 0 {
		return d
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	for i := 0; i < HandSize; i++ {
		if d := strings.IndexByte(ranks, a.Cards[i]) - strings.IndexByte(ranks, b.Cards[i]); d != 0 {
			return d
		}
	}
	return 0
}

// ParseHand parses "<cards> <bid>".
func ParseHand(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != HandSize {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedHand, line)
	}
	for i := 0; i < HandSize; i++ {
		if strings.IndexByte(order, fields[0][i]) < 0 {
			return Hand{}, fmt.Errorf("%w: unknown card %q in %q", ErrMalformedHand, fields[0][i], line)
		}
	}
	bid, err := strconv.Atoi(fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid %q", ErrMalformedHand, fields[1])
	}
	return Hand{Cards: fields[0], Bid: bid}, nil
}

// ParseHands parses every line.
func ParseHands(lines []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		h, err := ParseHand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Winnings ranks hands from weakest (rank 1) and sums bid times rank.
func Winnings(hands []Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return Compare(a, b, jokers) })
	total := 0
	for i, h := range sorted {
		total += h.Bid * (i + 1)
	}
	return total
}

func solve(lines []string, jokers bool) (int, error) {
	hands, err := ParseHands(lines)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, jokers), nil
}

// Part1 returns total winnings with J as jack.
func Part1(lines []string) (int, error) {
	return solve(lines, false)
}

// Part2 returns total winnings with J as joker.
func Part2(lines []string) (int, error) {
	return solve(lines, true)
}
