package core

// checkVertex panics with ErrVertexOutOfRange unless 1 <= v <= size.
func (g *Graph) checkVertex(op string, v int) {
	if v < 1 || v > g.size {
		violation("core: %s: vertex %d outside [1, %d]: %w", op, v, g.size, ErrVertexOutOfRange)
	}
}

// HasVertex reports whether v is a vertex of g, i.e. 1 <= v <= VertexCount().
// Unlike the other accessors it never panics.
func (g *Graph) HasVertex(v int) bool {
	return v >= 1 && v <= g.size
}

// Vertices returns 1..VertexCount() in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, g.size)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Degree returns the number of adjacency entries of v (a self-loop counts once).
// Panics with ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.checkVertex("Degree", v)
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v])
}
