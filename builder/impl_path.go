// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_path.go — Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i—(i+1) for i = 1..n-1 in ascending order.

package builder

import "github.com/katalvlaran/mstlab/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links 1—2—…—n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodPath, g, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			g.InsertEdge(core.Edge{Head: i, Tail: i + 1, Weight: cfg.weight()})
		}

		return nil
	}
}
