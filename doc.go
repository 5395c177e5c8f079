// Package mstlab computes minimum spanning trees of weighted, undirected
// graphs with Prim's and Kruskal's algorithms.
//
// What is mstlab?
//
//	A small, thread-safe library plus the mst command:
//		• Core primitives: a fixed set of vertices 1..N, mirrored adjacency lists
//		• Disjoint sets: union-by-size with path compression
//		• Minimum spanning trees: Prim (O(V²) scan) and Kruskal (heap + union-find)
//		• Traversal: BFS reachability, used to explain disconnected inputs
//		• Fixtures: seeded path, cycle, star, wheel, complete and random graphs
//
// Packages:
//
//	core/          — Graph and Edge, insert/remove with weight update, read views
//	dsets/         — DisjointSet over labels 1..N
//	prim_kruskal/  — Prim, PrimFrom, Kruskal and the Compute entry point
//	bfs/           — breadth-first search and Reachable
//	builder/       — deterministic graph constructors
//	cmd/mst/       — run, print and generate commands
//
// Quick example:
//
//	    1───2
//	    │ ╲ │     1-2 (1), 2-3 (2), 3-4 (3), 1-4 (4), 1-3 (10)
//	    4───3
//
//	g := core.NewGraphFromEdges([]core.Edge{
//		{Head: 1, Tail: 2, Weight: 1},
//		{Head: 2, Tail: 3, Weight: 2},
//		{Head: 3, Tail: 4, Weight: 3},
//		{Head: 1, Tail: 4, Weight: 4},
//		{Head: 1, Tail: 3, Weight: 10},
//	}, 4)
//	edges, total, _ := prim_kruskal.Kruskal(g) // (1,2,1) (2,3,2) (3,4,3), total 6
//
// Disconnected graphs are not errors: Prim spans the component of its root
// and Kruskal returns a spanning forest. Compute reports which case applies
// through Result.Spanning.
package mstlab
