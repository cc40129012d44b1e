// Package config resolves a growth run from defaults, an optional YAML file
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Model names accepted by model.name.
const (
	ModelA     = "a"
	ModelB     = "b"
	ModelMixed = "mixed"
)

// Keys. Flags bound through BindFlags use the part after the last dot,
// with underscores turned into dashes (model.plot_dir → --plot-dir).
const (
	KeyModel    = "model.name"
	KeyN        = "model.n"
	KeyM        = "model.m"
	KeyP        = "model.p"
	KeySteps    = "model.steps"
	KeyPattern  = "model.pattern"
	KeySeed     = "model.seed"
	KeyPlotDir  = "output.plot_dir"
	KeyLogLevel = "logging.level"
)

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration holding the defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyModel, ModelA)
	v.SetDefault(KeyN, 1000)
	v.SetDefault(KeyM, 3)
	v.SetDefault(KeyP, 0.01)
	v.SetDefault(KeySteps, 10000)
	v.SetDefault(KeyPattern, "BR")
	v.SetDefault(KeySeed, time.Now().UnixNano())

	v.SetDefault(KeyPlotDir, "")
	v.SetDefault(KeyLogLevel, "info")

	return &Config{v: v}
}

// LoadFromFile merges a YAML file over the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}

	return nil
}

// BindFlags binds every key to the flag of the same short name in fs; only
// flags the user actually set override file and default values.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{KeyModel, KeyN, KeyM, KeyP, KeySteps, KeyPattern, KeySeed, KeyPlotDir, KeyLogLevel} {
		name := FlagName(key)
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// FlagName maps a key to its flag name.
func FlagName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	if key == "name" {
		return "model"
	}
	if key == "level" {
		return "log-level"
	}

	return strings.ReplaceAll(key, "_", "-")
}

// Set allows programmatic overrides.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for run parameters
func (c *Config) Model() string    { return strings.ToLower(c.v.GetString(KeyModel)) }
func (c *Config) N() int           { return c.v.GetInt(KeyN) }
func (c *Config) M() int           { return c.v.GetInt(KeyM) }
func (c *Config) P() float64       { return c.v.GetFloat64(KeyP) }
func (c *Config) Steps() int       { return c.v.GetInt(KeySteps) }
func (c *Config) Pattern() string  { return c.v.GetString(KeyPattern) }
func (c *Config) Seed() int64      { return c.v.GetInt64(KeySeed) }
func (c *Config) PlotDir() string  { return c.v.GetString(KeyPlotDir) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Validate checks the fields the selected model reads. Parameter ranges
// that depend on graph state are left to the builder.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.LogLevel())
	}

	switch c.Model() {
	case ModelA:
		if c.N() < 1 || c.M() < 1 {
			return fmt.Errorf("%w: model a needs n ≥ 1 and m ≥ 1, got n=%d m=%d", ErrInvalidConfig, c.N(), c.M())
		}
		if c.M() > c.N() {
			return fmt.Errorf("%w: model a needs m ≤ n, got n=%d m=%d", ErrInvalidConfig, c.N(), c.M())
		}
	case ModelB:
		if c.N() < 1 || c.Steps() < 0 {
			return fmt.Errorf("%w: model b needs n ≥ 1 and steps ≥ 0, got n=%d steps=%d", ErrInvalidConfig, c.N(), c.Steps())
		}
	case ModelMixed:
		if c.M() < 1 || c.N() < c.M() {
			return fmt.Errorf("%w: mixed model needs 1 ≤ m ≤ n, got n=%d m=%d", ErrInvalidConfig, c.N(), c.M())
		}
		if c.P() < 0 || c.P() > 1 {
			return fmt.Errorf("%w: p must lie in [0,1], got %g", ErrInvalidConfig, c.P())
		}
		if strings.TrimSpace(c.Pattern()) == "" {
			return fmt.Errorf("%w: mixed model needs a pattern", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown model %q (want a, b or mixed)", ErrInvalidConfig, c.Model())
	}

	return nil
}

// CreateLogger creates a console zerolog logger writing to w at the
// configured level; an unparsable level falls back to info.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "netgrowth").Logger()
}
