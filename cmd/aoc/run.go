package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/lineio"
)

var (
	runPart  int
	runInput string
	runAll   bool
)

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve one day, or every day with --all",
	Long: `Reads the puzzle input and prints one "<LABEL>: <value>" line per part.

Day 10 prints STEPS and AREA; other days print PART 1 and PART 2.
Use --input - to read the puzzle from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDays,
}

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "solve only this part (1 or 2)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input file, or - for stdin")
	runCmd.Flags().BoolVar(&runAll, "all", false, "solve every day whose input file exists")
	rootCmd.AddCommand(runCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	days := registry(logger)
	out := cmd.OutOrStdout()
	if runAll {
		if len(args) > 0 || runInput != "" {
			return errors.New("--all takes no day and no --input")
		}
		for _, d := range days {
			path := cfg.InputPath(d.Number)
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				logger.Info("input missing, skipping", zap.Int("day", d.Number), zap.String("path", path))
				continue
			}
			fmt.Fprintf(out, "Day %d: %s\n", d.Number, d.Title)
			if err := solveDay(cmd, d, path); err != nil {
				return err
			}
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("need a day number or --all")
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDay, args[0])
	}
	d, err := lookupDay(days, number)
	if err != nil {
		return err
	}
	path := runInput
	if path == "" {
		path = cfg.InputPath(number)
	}
	return solveDay(cmd, d, path)
}

func solveDay(cmd *cobra.Command, d Day, path string) error {
	if runPart < 0 || runPart > len(d.Parts) {
		return fmt.Errorf("day %d has no part %d", d.Number, runPart)
	}
	lines, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	parts := d.Parts
	if runPart != 0 {
		parts = d.Parts[runPart-1 : runPart]
	}

	start := time.Now()
	var values []int
	if runPart == 0 && d.SolveAll != nil {
		if values, err = d.SolveAll(lines); err != nil {
			return fmt.Errorf("day %d: %w", d.Number, err)
		}
		if len(values) != len(parts) {
			return fmt.Errorf("day %d: got %d answers for %d parts", d.Number, len(values), len(parts))
		}
	} else {
		for _, p := range parts {
			value, err := p.Solve(lines)
			if err != nil {
				return fmt.Errorf("day %d %s: %w", d.Number, p.Label, err)
			}
			values = append(values, value)
		}
	}
	logger.Info("solved",
		zap.Int("day", d.Number),
		zap.Int("parts", len(parts)),
		zap.String("input", path),
		zap.Duration("elapsed", time.Since(start)),
	)

	out := cmd.OutOrStdout()
	for i, p := range parts {
		fmt.Fprintf(out, "%s: %d\n", p.Label, values[i])
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return lineio.Read(cmd.InOrStdin())
	}
	return lineio.ReadFile(path)
}
