// Command aoc solves Advent of Code 2023 puzzles, days 1 through 10.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 solutions",
	Long: `aoc runs the puzzle solvers for Advent of Code 2023.

Inputs are read from the directory named in aoc.toml (default "inputs",
one file per day named day01.txt, day02.txt, ...) or from --input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, optional := configPath, false
		if path == "" {
			path, optional = config.DefaultPath, true
		}
		loaded, err := config.Load(path, optional)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", `settings file (default "aoc.toml" if present)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
