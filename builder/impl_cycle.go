// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_cycle.go — Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i—(i mod n)+1 for i = 1..n; the last one closes the ring.

package builder

import "github.com/katalvlaran/mstlab/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodCycle, g, minCycleNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 1; i <= n; i++ {
			g.InsertEdge(core.Edge{Head: i, Tail: i%n + 1, Weight: cfg.weight()})
		}

		return nil
	}
}
