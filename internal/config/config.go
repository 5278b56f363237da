// Package config holds the host-side settings for a life trick run.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the parameters a trick is set up with.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed picks the random soup. Zero draws a fresh seed per run.
	Seed int64 `yaml:"seed"`

	// TargetFPS is the rate the host calls Update at.
	TargetFPS float64 `yaml:"target_fps"`

	// StaleSeconds is how long to keep emitting frames once the
	// simulation is cycling.
	StaleSeconds float64 `yaml:"stale_seconds"`

	// MaxGenerations caps a run that never cycles. Zero means unbounded.
	MaxGenerations int `yaml:"max_generations"`

	// Pattern is an optional plaintext pattern file placed at the centre of
	// an otherwise dead board instead of a random soup.
	Pattern string `yaml:"pattern"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Width:        64,
		Height:       32,
		TargetFPS:    30,
		StaleSeconds: 3,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup (0 = fresh each run)")
	fs.Float64Var(&c.TargetFPS, "target-fps", c.TargetFPS, "frames per second")
	fs.Float64Var(&c.StaleSeconds, "stale-seconds", c.StaleSeconds, "seconds to keep running after a cycle is found")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop exploring after this many generations (0 = unbounded)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to start from")
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: dimensions %dx%d must not be negative", ErrInvalidConfig, c.Width, c.Height)
	case c.TargetFPS <= 0 || math.IsInf(c.TargetFPS, 0) || math.IsNaN(c.TargetFPS):
		return fmt.Errorf("%w: target_fps %v must be positive", ErrInvalidConfig, c.TargetFPS)
	case c.StaleSeconds < 0:
		return fmt.Errorf("%w: stale_seconds %v must not be negative", ErrInvalidConfig, c.StaleSeconds)
	case c.MaxGenerations < 0:
		return fmt.Errorf("%w: max_generations %d must not be negative", ErrInvalidConfig, c.MaxGenerations)
	}
	return nil
}

// TPS is TargetFPS rounded to a whole tick rate of at least 1.
func (c Config) TPS() int {
	return int(math.Max(1, math.Round(c.TargetFPS)))
}

// RandomSeed derives a seed from the wall clock.
func RandomSeed() int64 { return time.Now().UnixNano() }

// ResolveSeed returns a copy of c whose zero Seed is replaced by next().
func (c Config) ResolveSeed(next func() int64) Config {
	if c.Seed == 0 {
		c.Seed = next()
	}
	return c
}

// StaleFrames is the number of frames emitted after a cycle is detected.
func (c Config) StaleFrames() int {
	return int(math.Round(c.TargetFPS * c.StaleSeconds))
}

// Resolve loads path (or the defaults when path is empty) and then applies
// every flag explicitly set on fs that Bind knows about.
func Resolve(path string, fs *pflag.FlagSet) (Config, error) {
	c := Default()
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return c, err
		}
	}

	own := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(own)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || own.Lookup(f.Name) == nil {
			return
		}
		if setErr := own.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, setErr)
		}
	})
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}
