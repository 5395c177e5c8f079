// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_wheel.go — Wheel() constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim 2..n is a cycle (emitted first), then spokes 1—v for v = 2..n.

package builder

import "github.com/katalvlaran/mstlab/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for W_n: a cycle over 2..n plus a hub at 1.
func Wheel() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodWheel, g, minWheelNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for v := 2; v <= n; v++ {
			next := v + 1
			if next > n {
				next = 2
			}
			g.InsertEdge(core.Edge{Head: v, Tail: next, Weight: cfg.weight()})
		}
		for v := 2; v <= n; v++ {
			g.InsertEdge(core.Edge{Head: starCenter, Tail: v, Weight: cfg.weight()})
		}

		return nil
	}
}
