package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeFile(t, `
input_dir = "puzzles"
log_level = "debug"

[inputs]
10 = "/tmp/maze.txt"
`)
	cfg, err := config.Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, config.DefaultInputName, cfg.InputName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/maze.txt", cfg.InputPath(10))
	assert.Equal(t, filepath.Join("puzzles", "day03.txt"), cfg.InputPath(3))
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := config.Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "config: load failed")
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "input_dir = \n")
	_, err := config.Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse failed")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"BadLevel", `log_level = "loud"`},
		{"NoVerb", `input_name = "input.txt"`},
		{"TwoVerbs", `input_name = "%d-%d.txt"`},
		{"BadKey", "[inputs]\nten = \"x\""},
		{"DayOutOfRange", "[inputs]\n26 = \"x\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body), false)
			assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)
		})
	}
}

func TestDefault_InputPath(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, filepath.Join("inputs", "day10.txt"), cfg.InputPath(10))
}
