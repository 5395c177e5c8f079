package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dsets"
)

// Kruskal computes a minimum spanning tree (a spanning forest when the graph is
// disconnected) by processing edges in ascending weight order.
//
// Steps:
//  1. Collect each undirected edge once: from adj[i] keep only i < Tail. This
//     skips the mirrored copies and every self-loop.
//  2. Heapify the edges (min-heap by Weight, then Head, then Tail).
//  3. Create a dsets.DisjointSet of VertexCount() singletons.
//  4. While fewer than |V|-1 edges are accepted and the heap is non-empty: pop
//     the lightest edge; if Find(Head) != Find(Tail), Join the two roots and
//     accept the edge, otherwise it would close a cycle and is dropped.
//
// Complexity: O(E log E + E·α(V)) time, O(E + V) extra memory.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	var (
		mst   []core.Edge
		total int64
	)
	graph.Read(func(v core.View) {
		mst, total = kruskal(v)
	})

	return mst, total, nil
}

func kruskal(v core.View) ([]core.Edge, int64) {
	n := v.VertexCount()

	pq := make(edgePQ, 0, v.EdgeCount())
	for i := 1; i <= n; i++ {
		for _, e := range v.Incident(i) {
			if i < e.Tail {
				pq = append(pq, e)
			}
		}
	}
	heap.Init(&pq)

	sets := dsets.New(n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for len(mst) < n-1 && pq.Len() > 0 {
		e := heap.Pop(&pq).(core.Edge)
		r, s := sets.Find(e.Head), sets.Find(e.Tail)
		if r == s {
			continue
		}
		sets.Join(r, s)
		mst = append(mst, e)
		total += e.Weight
	}

	return mst, total
}

// edgePQ implements heap.Interface for a min-heap of core.Edge ordered by
// Weight, with (Head, Tail) breaking ties.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Head != b.Head {
		return a.Head < b.Head
	}

	return a.Tail < b.Tail
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a core.Edge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes the last element; heap.Pop has already swapped the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
