// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_star.go — Star() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 1 is the center; emits 1—v for v = 2..n.

package builder

import "github.com/katalvlaran/mstlab/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 1
)

// Star returns a Constructor that connects vertex 1 to every other vertex.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodStar, g, minStarNodes); err != nil {
			return err
		}
		for v := starCenter + 1; v <= g.VertexCount(); v++ {
			g.InsertEdge(core.Edge{Head: starCenter, Tail: v, Weight: cfg.weight()})
		}

		return nil
	}
}
