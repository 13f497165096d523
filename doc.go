// Package aoc2023 collects solvers for the first ten Advent of Code 2023
// puzzles, built on a small set of shared grid and math helpers.
//
// What is inside?
//
//	grid/        generic rectangular grid: bounds, 4/8 neighbors, row-major index
//	lineio/      line-oriented input reading
//	mathx/       generic GCD / LCM helpers
//	trebuchet/   day 1  calibration digits, spelled or not
//	cubegame/    day 2  cube draws against a bag limit
//	schematic/   day 3  part numbers and gear ratios on a character grid
//	scratchcard/ day 4  matching numbers and cascading copies
//	almanac/     day 5  chained range maps, with interval splitting
//	boatrace/    day 6  integer-exact count of winning hold times
//	camelcards/  day 7  hand ranking with optional jokers
//	wasteland/   day 8  L/R network walk, LCM of ghost cycles
//	oasis/       day 9  difference-table extrapolation
//	pipemaze/    day 10 closed pipe loop tracing and enclosed area
//
// Every solver package exposes Part1 and Part2 taking the input lines and
// returning an int answer or an error; none of them log or touch the file
// system. The cmd/aoc binary wires them to input files, configuration and
// logging:
//
//	aoc run 10            # STEPS: n / AREA: n
//	aoc run --all
//	aoc verify            # check every solver against the worked examples
//	aoc list
//
// See DESIGN.md for how each package is put together.
package aoc2023
