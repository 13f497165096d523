package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/samples"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [day]",
	Short: "Check the solvers against the worked examples",
	Args:  cobra.MaximumNArgs(1),
	RunE:  verifySamples,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func verifySamples(cmd *cobra.Command, args []string) error {
	var (
		list []samples.Sample
		err  error
	)
	if len(args) == 1 {
		day, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("%w: %q", ErrUnknownDay, args[0])
		}
		if _, err := lookupDay(registry(logger), day); err != nil {
			return err
		}
		list, err = samples.ForDay(day)
	} else {
		list, err = samples.Load()
	}
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return errors.New("no samples to verify")
	}

	days := registry(logger)
	out := cmd.OutOrStdout()
	failed := 0
	for _, s := range list {
		d, err := lookupDay(days, s.Day)
		if err != nil {
			return err
		}
		part := d.Parts[s.Part-1]
		lines, err := s.Lines()
		if err != nil {
			return err
		}
		got, err := part.Solve(lines)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "FAIL day %d %s: %v\n", s.Day, part.Label, err)
		case got != s.Want:
			failed++
			fmt.Fprintf(out, "FAIL day %d %s: got %d, want %d\n", s.Day, part.Label, got, s.Want)
		default:
			fmt.Fprintf(out, "ok   day %d %s: %d\n", s.Day, part.Label, got)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(list))
	}
	return nil
}
