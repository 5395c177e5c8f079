// Package commands wires the mst command tree.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mstlab/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

// NewRootCmd builds the mst command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	d := config.Default()

	root := &cobra.Command{
		Use:           "mst",
		Short:         "Minimum spanning trees with Prim and Kruskal",
		Long:          "mst reads a weighted undirected graph as an edge list and computes its minimum spanning tree.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringP(config.KeyAlgorithm, "a", d.Algorithm, "algorithm: prim, kruskal or both")
	pf.StringP(config.KeyInput, "i", d.Input, "edge list file, - for stdin")
	pf.String(config.KeyFormat, d.Format, "edge list format: auto, text or yaml")
	pf.Int(config.KeyRoot, d.Root, "start vertex for Prim")
	pf.String(config.KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(a), newPrintCmd(a), newGenerateCmd(a))

	return root
}

// init resolves configuration and the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.log = newLogger(cmd.ErrOrStderr(), lvl)
	a.log.Debug("configuration resolved",
		zap.String("algorithm", cfg.Algorithm),
		zap.String("input", cfg.Input),
		zap.String("format", cfg.Format),
		zap.Int("root", cfg.Root),
	)

	return nil
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mst:", err)
		os.Exit(1)
	}
}

// openInput returns the reader for path, where "-" and "" mean stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}
