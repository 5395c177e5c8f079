package commands

import (
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/internal/config"
	"github.com/katalvlaran/mstlab/internal/edgelist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadGraph reads the configured input and builds the graph.
func (a *app) loadGraph(cmd *cobra.Command) (*core.Graph, error) {
	format := edgelist.FormatForPath(a.cfg.Input)
	if a.cfg.Format != config.FormatAuto {
		f, err := edgelist.ParseFormat(a.cfg.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	in, err := openInput(cmd, a.cfg.Input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	doc, err := edgelist.Parse(in, format)
	if err != nil {
		return nil, err
	}
	g := doc.Graph()
	a.log.Info("graph loaded",
		zap.String("input", a.cfg.Input),
		zap.String("format", string(format)),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}
