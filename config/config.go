// Package config loads heavyedge settings from a YAML/TOML/JSON file,
// HEAVYEDGE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/segreg"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	Mean    MeanConfig    `mapstructure:"mean"`
	Segreg  SegregConfig  `mapstructure:"segreg"`
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
}

// MeanConfig controls the averaging engines.
type MeanConfig struct {
	GridNum   int `mapstructure:"grid_num"`   // probability grid size
	BatchSize int `mapstructure:"batch_size"` // 0 loads the whole dataset
}

// SegregConfig controls the breakpoint search.
type SegregConfig struct {
	Tol         float64 `mapstructure:"tol"`
	MaxIter     int     `mapstructure:"max_iter"`
	MaxHalvings int     `mapstructure:"max_halvings"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// StoreConfig names the default dataset file.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mean: MeanConfig{GridNum: 1000},
		Segreg: SegregConfig{
			Tol:         segreg.DefaultTolerance,
			MaxIter:     segreg.DefaultMaxIter,
			MaxHalvings: segreg.DefaultMaxHalvings,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", OutputPath: "stderr"},
	}
}

// Validate reports the first nonsensical value.
func (c *Config) Validate() error {
	if err := c.Mean.Validate(); err != nil {
		return fmt.Errorf("mean config: %w", err)
	}
	if err := c.Segreg.Validate(); err != nil {
		return fmt.Errorf("segreg config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate checks grid and batch sizes.
func (c *MeanConfig) Validate() error {
	if c.GridNum < 2 {
		return fmt.Errorf("%w: mean.grid_num must be >= 2, got %d", ErrInvalid, c.GridNum)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: mean.batch_size must be >= 0, got %d", ErrInvalid, c.BatchSize)
	}

	return nil
}

// Validate checks the iteration limits and tolerance.
func (c *SegregConfig) Validate() error {
	if !(c.Tol >= 0) {
		return fmt.Errorf("%w: segreg.tol must be >= 0, got %g", ErrInvalid, c.Tol)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: segreg.max_iter must be >= 1, got %d", ErrInvalid, c.MaxIter)
	}
	if c.MaxHalvings < 1 {
		return fmt.Errorf("%w: segreg.max_halvings must be >= 1, got %d", ErrInvalid, c.MaxHalvings)
	}

	return nil
}

// Validate checks level and format names.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be one of: debug, info, warn, error", ErrInvalid)
	}
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be 'json' or 'console'", ErrInvalid)
	}

	return nil
}

// BatchOptions returns the profile options derived from the mean section.
// logger may be nil.
func (c *MeanConfig) BatchOptions(logger profile.Logger) []profile.Option {
	return []profile.Option{
		profile.WithBatchSize(c.BatchSize),
		profile.WithLogger(logger),
	}
}

// FitOptions returns the breakpoint-search options of the segreg section.
func (c *SegregConfig) FitOptions() []segreg.Option {
	return []segreg.Option{
		segreg.WithTolerance(c.Tol),
		segreg.WithMaxIter(c.MaxIter),
		segreg.WithMaxHalvings(c.MaxHalvings),
	}
}
