// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// ErrNilGraph indicates that an MST was requested on a nil graph.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow one tree from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (heap of edges plus union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the vertex Prim starts from unless told otherwise.
const DefaultRoot = 1

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use. Use DefaultOptions() for the default setup.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with Prim's root at vertex 1.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   DefaultRoot,
	}
}

// Result is the outcome of Compute.
type Result struct {
	// Method is the algorithm that produced Edges.
	Method string

	// Edges are the tree edges in emission order (discovery order for Prim,
	// acceptance order for Kruskal).
	Edges []core.Edge

	// Total is the sum of the weights in Edges.
	Total int64

	// Spanning reports len(Edges) == VertexCount()-1, i.e. the graph is
	// connected and Edges span all of it.
	Spanning bool
}

// Compute applies opts over DefaultOptions() and runs the selected algorithm.
//
// Returns ErrNilGraph for a nil graph and ErrUnknownMethod for an unrecognized
// Method. A disconnected graph is not an error: Result.Spanning is false.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if graph == nil {
		return Result{}, ErrNilGraph
	}

	var (
		edges []core.Edge
		total int64
		err   error
	)
	switch o.Method {
	case MethodKruskal:
		edges, total, err = Kruskal(graph)
	case MethodPrim:
		edges, total, err = PrimFrom(graph, o.Root)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Method:   o.Method,
		Edges:    edges,
		Total:    total,
		Spanning: len(edges) == graph.VertexCount()-1,
	}, nil
}
