// Package config loads the optional aoc.toml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the settings file looked up when --config is not given.
const DefaultPath = "aoc.toml"

// Defaults.
const (
	DefaultInputDir  = "inputs"
	DefaultInputName = "day%02d.txt"
	DefaultLogLevel  = "info"
)

// ErrInvalid marks a settings file that parsed but holds unusable values.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings for locating puzzle inputs and logging.
type Config struct {
	InputDir  string            `toml:"input_dir"`
	InputName string            `toml:"input_name"`
	LogLevel  string            `toml:"log_level"`
	Inputs    map[string]string `toml:"inputs"`
}

// Default returns a Config with every default applied.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, applies defaults and validates. When optional is true a
// missing file yields the defaults instead of an error.
func Load(path string, optional bool) (Config, error) {
	var cfg Config
	if err := loadToml(path, &cfg); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config: parse failed (%s): %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.InputDir) == "" {
		c.InputDir = DefaultInputDir
	}
	if strings.TrimSpace(c.InputName) == "" {
		c.InputName = DefaultInputName
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the log level, the name pattern and the override keys.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if strings.Count(c.InputName, "%") != 1 {
		return fmt.Errorf("%w: input_name %q must contain one day verb", ErrInvalid, c.InputName)
	}
	if name := fmt.Sprintf(c.InputName, 1); strings.Contains(name, "%!") {
		return fmt.Errorf("%w: input_name %q: %s", ErrInvalid, c.InputName, name)
	}
	for key := range c.Inputs {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > 25 {
			return fmt.Errorf("%w: inputs key %q is not a day in 1..25", ErrInvalid, key)
		}
	}
	return nil
}

// InputPath returns where the input for day lives: the [inputs] override if
// present, otherwise input_dir joined with the formatted input_name.
func (c Config) InputPath(day int) string {
	if p, ok := c.Inputs[strconv.Itoa(day)]; ok && p != "" {
		return p
	}
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputName, day))
}
