// Package prim_kruskal computes a Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - Given a connected weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex, contains no cycle, and has minimum total weight.
//   - MST matters for network design (cheapest backbone that reaches every
//     site), clustering (cut the heaviest tree edges) and as a subroutine of
//     approximation algorithms.
//
// Algorithms Provided
//
//   - Prim(g) / PrimFrom(g, root) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root (vertex 1 for Prim). dist[v] is the
//     cheapest known edge from the tree to v and path[v] its tree endpoint.
//     After settling a vertex, relax its incident edges, then scan all
//     vertices for the cheapest unsettled one and emit (path[v], v, dist[v]).
//
//   - Complexity: O(V²) time from the linear scan, O(V) extra space. No
//     priority queue: the emitted order is "by settling", and ties go to the
//     lowest vertex id.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//
//   - Strategy: put every edge once into a min-heap keyed by weight, then pop
//     edges and accept those whose endpoints have different dsets roots,
//     joining the two roots. Stop after |V|−1 acceptances or when the heap
//     runs dry.
//
//   - Complexity: O(E log E) time for the heap, O(E + V) extra space. Equal
//     weights pop in (Head, Tail) order, so output is deterministic.
//
// # Disconnected graphs
//
// Neither algorithm reports an error for a disconnected graph. Prim returns the
// spanning tree of the root's component only; Kruskal returns a spanning forest
// of all components. Either way, fewer than VertexCount()−1 edges come back,
// and that count is the only signal. Compute exposes it as Result.Spanning.
//
// Errors
//
//   - ErrNilGraph      : the graph pointer is nil.
//   - ErrUnknownMethod : Compute was asked for an algorithm it does not know.
//
// Contract violations (a Prim root outside [1, N]) panic with an error wrapping
// core.ErrVertexOutOfRange.
//
// Both algorithms hold the graph's read lock for their whole run, so the graph
// is read-only while an MST is computed. Kruskal's disjoint set lives only for
// the duration of one call.
//
// For examples of usage, see example_test.go.
package prim_kruskal
