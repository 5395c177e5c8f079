package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstlab/core"
)

// Prim computes an MST by growing a tree from vertex 1. See PrimFrom.
func Prim(graph *core.Graph) ([]core.Edge, int64, error) {
	return PrimFrom(graph, DefaultRoot)
}

// PrimFrom computes the minimum spanning tree of root's component.
//
// Steps:
//  1. dist[v] = +inf and path[v] = 0 for all v; dist[root] = 0, root settled.
//  2. Relax every edge (u, t) of the last settled vertex u: if t is unsettled
//     and weight < dist[t], set dist[t] = weight and path[t] = u.
//  3. Scan all vertices for the unsettled one with the smallest finite dist
//     (ties: lowest id). If none exists, the component is spanned: stop.
//  4. Emit (path[v], v, dist[v]), add dist[v] to the total, settle v, go to 2.
//
// Vertices outside root's component never become reachable and are omitted.
// Panics with core.ErrVertexOutOfRange if root is not a vertex of graph.
// Complexity: O(V² + E) time, O(V) extra memory.
func PrimFrom(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if !graph.HasVertex(root) {
		panic(fmt.Errorf("prim_kruskal: root %d outside [1, %d]: %w",
			root, graph.VertexCount(), core.ErrVertexOutOfRange))
	}

	var (
		mst   []core.Edge
		total int64
	)
	graph.Read(func(v core.View) {
		mst, total = prim(v, root)
	})

	return mst, total, nil
}

// prim runs the O(V²) vertex-scan variant over a read-locked view.
func prim(v core.View, root int) ([]core.Edge, int64) {
	n := v.VertexCount()
	dist := make([]int64, n+1)   // cheapest known edge into the tree
	path := make([]int, n+1)     // tree endpoint of that edge; 0 = none
	done := make([]bool, n+1)    // settled into the tree
	reached := make([]bool, n+1) // dist is finite
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	dist[root], done[root], reached[root] = 0, true, true

	mst := make([]core.Edge, 0, n-1)
	var total int64
	for u := root; ; {
		for _, e := range v.Incident(u) {
			t := e.Tail
			if done[t] {
				continue
			}
			if !reached[t] || e.Weight < dist[t] {
				dist[t], path[t], reached[t] = e.Weight, u, true
			}
		}

		next := 0
		for t := 1; t <= n; t++ {
			if done[t] || !reached[t] {
				continue
			}
			if next == 0 || dist[t] < dist[next] {
				next = t
			}
		}
		if next == 0 {
			break
		}

		mst = append(mst, core.Edge{Head: path[next], Tail: next, Weight: dist[next]})
		total += dist[next]
		done[next] = true
		u = next
	}

	return mst, total
}
