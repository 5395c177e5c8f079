// Package core provides the undirected, weighted Graph used by the MST
// algorithms: a fixed vertex set {1..N} with per-vertex adjacency lists.
//
// Model
//
//   - Vertices are the integers 1..VertexCount(). Vertex 0 does not exist and
//     is free to serve as a "no predecessor" sentinel in algorithms.
//   - An Edge (Head, Tail, Weight) is undirected. The Graph stores it twice,
//     once in adj[Head] and once, reversed, in adj[Tail], so both endpoints
//     enumerate it in O(deg).
//   - There are no parallel edges: inserting an edge between an already
//     connected pair overwrites the weight of both stored directions.
//   - A self-loop (v, v, w) is stored once in adj[v] and counted once.
//
// Invariant: adj[u] holds an edge to v iff adj[v] holds the mirrored edge to u
// with the same weight. Every mutation maintains it.
//
// Core Methods:
//
//	NewGraph(n) *Graph                        // O(n)
//	NewGraphFromEdges(edges, n) *Graph        // O(n + Σ deg)
//	InsertEdge(e Edge)                        // O(deg(head) + deg(tail))
//	RemoveEdge(e Edge)                        // O(deg(head) + deg(tail))
//	HasEdge(u, v) bool, Weight(u, v)          // O(deg(u))
//	Incident(v) []Edge, Degree(v) int         // O(deg(v)), O(1)
//	Edges() []Edge                            // O(V + E), each edge once with Head < Tail
//	VertexCount(), EdgeCount()                // O(1)
//	Read(func(View))                          // read-locked, zero-copy access for algorithms
//	Clone() *Graph, Clear()
//
// # Errors
//
// An out-of-range vertex, a vertex count below one, or removing an edge that
// does not exist is a caller bug. Such calls panic with an error wrapping
// ErrVertexOutOfRange, ErrInvalidArgument or ErrEdgeNotFound, and the check
// runs before the graph is touched.
//
// # Concurrency
//
// A sync.RWMutex guards the adjacency lists: mutators take the write lock,
// queries and Read take the read lock. Algorithms that run inside Read observe
// a graph that cannot change under them.
package core
