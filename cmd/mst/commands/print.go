package commands

import (
	"github.com/katalvlaran/mstlab/internal/render"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the adjacency lists of the input graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			return render.Adjacency(cmd.OutOrStdout(), g)
		},
	}
}
