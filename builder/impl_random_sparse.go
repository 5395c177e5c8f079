// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Canonical model: Erdős–Rényi-like; each unordered pair {i, j}, i < j, is
// included independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0, 1}.
//   - Trials run for i ascending, then j ascending; the weight is drawn only
//     for included pairs, after the Bernoulli trial.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples each pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if cfg.rng.Float64() < p {
					g.InsertEdge(core.Edge{Head: i, Tail: j, Weight: cfg.weight()})
				}
			}
		}

		return nil
	}
}
