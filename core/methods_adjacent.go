package core

// Incident returns a copy of the edges stored at v, in insertion order. Every
// returned edge has Head == v.
// Panics with ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(deg(v)).
func (g *Graph) Incident(v int) []Edge {
	g.checkVertex("Incident", v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Neighbors returns the Tail of every edge stored at v, in insertion order.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	g.checkVertex("Neighbors", v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj[v]))
	for i, e := range g.adj[v] {
		out[i] = e.Tail
	}

	return out
}

// AdjacencyList returns a deep copy of the adjacency lists indexed by vertex;
// index 0 is always nil.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Edge, len(g.adj))
	for v := 1; v < len(g.adj); v++ {
		out[v] = make([]Edge, len(g.adj[v]))
		copy(out[v], g.adj[v])
	}

	return out
}
