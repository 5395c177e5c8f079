package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mstlab/internal/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	d := config.Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(config.KeyAlgorithm, d.Algorithm, "")
	fs.String(config.KeyInput, d.Input, "")
	fs.String(config.KeyFormat, d.Format, "")
	fs.Int(config.KeyRoot, d.Root, "")
	fs.String(config.KeyLogLevel, d.LogLevel, "")
	require.NoError(t, fs.Parse(args))

	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MST_ALGORITHM", "Prim")
	t.Setenv("MST_LOG_LEVEL", "debug")
	t.Setenv("MST_ROOT", "3")

	cfg, err := config.Load(viper.New(), newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmPrim, cfg.Algorithm)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Root)
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeFile(t, "algorithm: both\ninput: graph.txt\nroot: 2\n")

	cfg, err := config.Load(viper.New(), newFlags(t), path)
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmBoth, cfg.Algorithm)
	assert.Equal(t, "graph.txt", cfg.Input)
	assert.Equal(t, 2, cfg.Root)

	// an explicit flag beats the file
	cfg, err = config.Load(viper.New(), newFlags(t, "--root", "5", "--format", "yaml"), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Root)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, config.AlgorithmBoth, cfg.Algorithm)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(viper.New(), nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{"Algorithm", []string{"--algorithm", "boruvka"}},
		{"Format", []string{"--format", "csv"}},
		{"Root", []string{"--root", "0"}},
		{"LogLevel", []string{"--log-level", "loud"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(viper.New(), newFlags(t, tc.args...), "")
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
