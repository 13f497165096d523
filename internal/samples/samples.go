// Package samples holds the worked examples used to self-check solvers.
package samples

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2023/lineio"
)

//go:embed samples.yaml
var fixture []byte

// ErrMalformedSample marks a fixture entry missing required fields.
var ErrMalformedSample = errors.New("samples: malformed entry")

// Sample is one worked example: an input text and the expected answer for
// one part of one day.
type Sample struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Input string `yaml:"input"`
	Want  int    `yaml:"want"`
}

// Lines splits Input the way puzzle files are read.
func (s Sample) Lines() ([]string, error) {
	return lineio.Split(s.Input)
}

// Load returns every embedded sample in fixture order.
func Load() ([]Sample, error) {
	return Parse(fixture)
}

// Parse decodes a YAML list of samples and checks each entry.
func Parse(data []byte) ([]Sample, error) {
	var out []Sample
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("samples: decode: %w", err)
	}
	for i, s := range out {
		lines, err := s.Lines()
		switch {
		case s.Day < 1 || s.Day > 25:
			return nil, fmt.Errorf("%w: entry %d: day %d", ErrMalformedSample, i, s.Day)
		case s.Part != 1 && s.Part != 2:
			return nil, fmt.Errorf("%w: entry %d: part %d", ErrMalformedSample, i, s.Part)
		case err != nil:
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedSample, i, err)
		case len(lines) == 0:
			return nil, fmt.Errorf("%w: entry %d: empty input", ErrMalformedSample, i)
		}
	}
	return out, nil
}

// ForDay returns the embedded samples for one day.
func ForDay(day int) ([]Sample, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, s := range all {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}
