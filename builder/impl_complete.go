// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_complete.go — Complete() constructor.
//
// Contract:
//   • n ≥ 1; K_1 has no edges.
//   • Emits i—j for every i < j, i ascending then j ascending.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/mstlab/core"

// Complete returns a Constructor for the complete graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				g.InsertEdge(core.Edge{Head: i, Tail: j, Weight: cfg.weight()})
			}
		}

		return nil
	}
}
