// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at construction time; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// minGraphVertices is the smallest vertex count core.NewGraph accepts.
const minGraphVertices = 1

// Constructor adds a topology to g using the resolved builderConfig.
// Constructors validate early, emit edges in a documented stable order and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(n + Σ cost of each constructor).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < minGraphVertices {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, minGraphVertices, ErrTooFewVertices)
	}
	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// requireVertices returns ErrTooFewVertices, tagged with method, when g has
// fewer than min vertices.
func requireVertices(method string, g *core.Graph, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
