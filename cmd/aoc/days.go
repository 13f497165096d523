package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2023/almanac"
	"github.com/katalvlaran/aoc2023/boatrace"
	"github.com/katalvlaran/aoc2023/camelcards"
	"github.com/katalvlaran/aoc2023/cubegame"
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/oasis"
	"github.com/katalvlaran/aoc2023/pipemaze"
	"github.com/katalvlaran/aoc2023/schematic"
	"github.com/katalvlaran/aoc2023/scratchcard"
	"github.com/katalvlaran/aoc2023/trebuchet"
	"github.com/katalvlaran/aoc2023/wasteland"
)

// ErrUnknownDay is returned for a day with no registered solver.
var ErrUnknownDay = errors.New("aoc: unknown day")

// Part is one answer of a puzzle.
type Part struct {
	Label string
	Solve func(lines []string) (int, error)
}

// Day is a registered puzzle. SolveAll, when set, answers every part from a
// single pass over the input, in Parts order.
type Day struct {
	Number   int
	Title    string
	Parts    []Part
	SolveAll func(lines []string) ([]int, error)
}

func standard(p1, p2 func([]string) (int, error)) []Part {
	return []Part{{Label: "PART 1", Solve: p1}, {Label: "PART 2", Solve: p2}}
}

// registry lists the solvers in day order. Day 10 reports every tracer step
// to logger at debug level.
func registry(logger *zap.Logger) []Day {
	trace := pipemaze.WithOnStep(stepLogger(logger))
	return []Day{
		{Number: 1, Title: "Trebuchet?!", Parts: standard(trebuchet.Part1, trebuchet.Part2)},
		{Number: 2, Title: "Cube Conundrum", Parts: standard(cubegame.Part1, cubegame.Part2)},
		{Number: 3, Title: "Gear Ratios", Parts: standard(schematic.Part1, schematic.Part2)},
		{Number: 4, Title: "Scratchcards", Parts: standard(scratchcard.Part1, scratchcard.Part2)},
		{Number: 5, Title: "If You Give A Seed A Fertilizer", Parts: standard(almanac.Part1, almanac.Part2)},
		{Number: 6, Title: "Wait For It", Parts: standard(boatrace.Part1, boatrace.Part2)},
		{Number: 7, Title: "Camel Cards", Parts: standard(camelcards.Part1, camelcards.Part2)},
		{Number: 8, Title: "Haunted Wasteland", Parts: standard(wasteland.Part1, wasteland.Part2)},
		{Number: 9, Title: "Mirage Maintenance", Parts: standard(oasis.Part1, oasis.Part2)},
		{
			Number: 10,
			Title:  "Pipe Maze",
			Parts: []Part{
				{Label: "STEPS", Solve: func(lines []string) (int, error) {
					r, err := pipemaze.Solve(lines, trace)
					return r.Steps, err
				}},
				{Label: "AREA", Solve: func(lines []string) (int, error) {
					r, err := pipemaze.Solve(lines, trace)
					return r.Area, err
				}},
			},
			SolveAll: func(lines []string) ([]int, error) {
				r, err := pipemaze.Solve(lines, trace)
				if err != nil {
					return nil, err
				}
				return []int{r.Steps, r.Area}, nil
			},
		},
	}
}

func lookupDay(days []Day, number int) (Day, error) {
	for _, d := range days {
		if d.Number == number {
			return d, nil
		}
	}
	return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, number)
}

// stepLogger returns nil when debug is off so the tracer keeps its no-op hook.
func stepLogger(logger *zap.Logger) pipemaze.StepFunc {
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		return nil
	}
	return func(p grid.Point, pipe pipemaze.Pipe, index int) {
		logger.Debug("trace step",
			zap.Int("index", index),
			zap.Stringer("cell", p),
			zap.Stringer("pipe", pipe),
		)
	}
}
