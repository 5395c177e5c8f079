// Package config resolves the mst command configuration from flags, MST_*
// environment variables, an optional YAML file and built-in defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every key when looking up environment variables;
// "log-level" becomes MST_LOG_LEVEL.
const EnvPrefix = "MST"

// Keys shared by flags, environment and config file.
const (
	KeyAlgorithm = "algorithm"
	KeyInput     = "input"
	KeyFormat    = "format"
	KeyRoot      = "root"
	KeyLogLevel  = "log-level"
)

// Algorithm names accepted by the run command.
const (
	AlgorithmPrim    = "prim"
	AlgorithmKruskal = "kruskal"
	AlgorithmBoth    = "both"
)

// FormatAuto selects the edge list format from the input file extension.
const FormatAuto = "auto"

// ErrInvalidConfig indicates a value that passed decoding but is not allowed.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved command configuration.
type Config struct {
	Algorithm string `mapstructure:"algorithm"`
	Input     string `mapstructure:"input"`
	Format    string `mapstructure:"format"`
	Root      int    `mapstructure:"root"`
	LogLevel  string `mapstructure:"log-level"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Algorithm: AlgorithmKruskal,
		Input:     "-",
		Format:    FormatAuto,
		Root:      1,
		LogLevel:  "info",
	}
}

// Load resolves a Config through v. flags may be nil; file may be empty.
func Load(v *viper.Viper, flags *pflag.FlagSet, file string) (Config, error) {
	d := Default()
	v.SetDefault(KeyAlgorithm, d.Algorithm)
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyRoot, d.Root)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Algorithm = strings.ToLower(cfg.Algorithm)
	cfg.Format = strings.ToLower(cfg.Format)

	return cfg, cfg.Validate()
}

// Validate reports the first disallowed field.
func (c Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmPrim, AlgorithmKruskal, AlgorithmBoth:
	default:
		return fmt.Errorf("%w: algorithm %q (want prim, kruskal or both)", ErrInvalidConfig, c.Algorithm)
	}
	switch c.Format {
	case FormatAuto, "text", "yaml":
	default:
		return fmt.Errorf("%w: format %q (want auto, text or yaml)", ErrInvalidConfig, c.Format)
	}
	if c.Root < 1 {
		return fmt.Errorf("%w: root %d (vertices start at 1)", ErrInvalidConfig, c.Root)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// Level parses LogLevel as a zap level name.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}
