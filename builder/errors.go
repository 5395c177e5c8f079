// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using %w.
//   • Constructors never panic; validation panics live in option constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// constructor needs (e.g. Cycle on two vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
