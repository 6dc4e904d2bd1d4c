// Package config holds the settings of the necklace command: which octave
// to work in, how to bias sampling, and how to log. Settings come from an
// optional YAML file, then NECKLACE_* environment variables, then flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/necklace/steps"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by Load.
const (
	EnvOctave    = "NECKLACE_OCTAVE"
	EnvRoot      = "NECKLACE_ROOT"
	EnvSeed      = "NECKLACE_SEED"
	EnvLogLevel  = "NECKLACE_LOG_LEVEL"
	EnvLogFormat = "NECKLACE_LOG_FORMAT"
)

// Config holds command configuration.
type Config struct {
	// Octave is the number of semitones a pattern spans.
	Octave int `yaml:"octave"`
	// Root is the pitch class the scale is shown from (0 = C).
	Root int `yaml:"root"`
	// Seed for the sampler. Zero picks the fixed default seed.
	Seed int64 `yaml:"seed"`
	// AugmentedProbability is the chance, in percent, that a sampled scale
	// has an augmented second. Nil means the share of such scales in the
	// generated set.
	AugmentedProbability *float64 `yaml:"augmentedProbability,omitempty"`
	// DoubleHalfProbability is the same for consecutive half steps.
	DoubleHalfProbability *float64 `yaml:"doubleHalfProbability,omitempty"`
	Log                   Log      `yaml:"log"`
}

// Log configures the command's slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Octave: steps.DefaultOctave,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvOctave); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvOctave, v)
		}
		c.Octave = n
	}
	if v := getenv(EnvRoot); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRoot, v)
		}
		c.Root = n
	}
	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = n
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate reports the first unusable setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Octave < 1 {
		return fmt.Errorf("%w: octave %d must be positive", ErrInvalidConfig, c.Octave)
	}
	if c.Root < 0 || c.Root >= c.Octave {
		return fmt.Errorf("%w: root %d outside [0, %d)", ErrInvalidConfig, c.Root, c.Octave)
	}
	for _, f := range []struct {
		name string
		p    *float64
	}{
		{"augmentedProbability", c.AugmentedProbability},
		{"doubleHalfProbability", c.DoubleHalfProbability},
	} {
		if f.p != nil && (math.IsNaN(*f.p) || *f.p < 0 || *f.p > 100) {
			return fmt.Errorf("%w: %s %v outside [0, 100]", ErrInvalidConfig, f.name, *f.p)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Probability returns a fixed probability pointer, for building configs in
// code.
func Probability(v float64) *float64 {
	return &v
}
