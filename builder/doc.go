// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// Package builder constructs deterministic weighted graph fixtures on
// core.Graph: paths, cycles, stars, wheels, complete graphs and seeded random
// sparse graphs over the vertices 1..n.
//
// Usage:
//
//	g, err := builder.BuildGraph(100,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 50))},
//		builder.Path(),            // guarantees connectivity
//		builder.RandomSparse(0.1), // extra chords
//	)
//
// Constructors run in order on the same graph. A later constructor that hits an
// already connected pair overwrites its weight (core.Graph has no parallel
// edges), so composition never duplicates an edge.
//
// Determinism: the same n, options, seed and constructor order always yield
// the same graph. Constructors never panic; they validate first and return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource)
// wrapped with the constructor name. Option constructors panic on meaningless
// input (nil functions), which is a programming error.
package builder
