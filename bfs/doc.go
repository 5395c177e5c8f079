// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links and the visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: slice indexed by vertex, -1 for vertices that were never reached
//   - Parent: slice indexed by vertex, 0 for the start and unreached vertices
//   - Supports hooks at three stages: OnEnqueue, OnDequeue and OnVisit
//     (OnVisit may abort the search with an error).
//   - Filters individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Edge weights are ignored; BFS only asks which vertices are linked.
//
// Why
//
//   - Decide which vertices share a component with a given root. Prim's
//     algorithm spans exactly that set, so BFS is the independent check.
//   - Compute fewest-hop paths in O(V + E).
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order, so the visit
//	sequence is fully reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// context errors or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if start is outside [1, VertexCount()].
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
