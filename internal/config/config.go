// Package config loads picoarray settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-array/internal/logging"
)

// MaxPrecision is the largest number of fractional digits worth printing for
// a float64.
const MaxPrecision = 17

// ErrInvalid marks a setting whose value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the command line tool settings.
type Config struct {
	// Precision is the number of digits after the decimal point, or -1 for
	// the shortest representation that round-trips.
	Precision int
	LogLevel  string
}

type fileConfig struct {
	Precision int    `toml:"precision"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Precision: -1,
		LogLevel:  "warn",
	}
}

// Load reads path and overlays the keys it defines onto Default().
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("precision") {
		cfg.Precision = raw.Precision
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the precision range and log level name.
func (c Config) Validate() error {
	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d out of range [-1, %d]", ErrInvalid, c.Precision, MaxPrecision)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
