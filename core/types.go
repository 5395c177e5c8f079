package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrInvalidArgument indicates a vertex count below one.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrVertexOutOfRange indicates a vertex outside [1, VertexCount()].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeNotFound indicates removal of an edge that is not in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is an undirected weighted edge between Head and Tail.
// (u, v, w) and (v, u, w) denote the same edge.
type Edge struct {
	Head   int
	Tail   int
	Weight int64
}

// Reverse returns the same edge seen from the other endpoint.
func (e Edge) Reverse() Edge {
	return Edge{Head: e.Tail, Tail: e.Head, Weight: e.Weight}
}

// LinksSameNodes reports whether e and o connect the same ordered pair of
// vertices, ignoring weight.
func (e Edge) LinksSameNodes(o Edge) bool {
	return e.Head == o.Head && e.Tail == o.Tail
}

// String renders the edge as "(head, tail, weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Head, e.Tail, e.Weight)
}

// Graph is an undirected weighted graph over the vertices 1..VertexCount().
//
// adj has VertexCount()+1 slots; slot 0 is never used so that vertex ids index
// it directly. Every Edge stored in adj[v] has Head == v.
type Graph struct {
	mu sync.RWMutex // guards adj and edgeCount

	adj       [][]Edge
	size      int
	edgeCount int
}

// violation panics with a formatted error that wraps one of the sentinels.
func violation(format string, args ...interface{}) {
	panic(fmt.Errorf(format, args...))
}
