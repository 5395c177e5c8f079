package core

// View is a read-only window onto a Graph, handed out by Graph.Read. It does
// no locking and no copying: it is valid only inside the Read callback, and the
// slices it returns must not be modified or retained.
type View struct {
	g *Graph
}

// Read calls fn with a View while holding g's read lock, so the graph cannot
// be mutated until fn returns. fn must not call mutating methods of g.
func (g *Graph) Read(fn func(View)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fn(View{g: g})
}

// VertexCount returns N.
func (v View) VertexCount() int { return v.g.size }

// EdgeCount returns the number of undirected edges.
func (v View) EdgeCount() int { return v.g.edgeCount }

// Incident returns the adjacency list of u without copying.
// Panics with ErrVertexOutOfRange for an unknown vertex.
func (v View) Incident(u int) []Edge {
	v.g.checkVertex("View.Incident", u)

	return v.g.adj[u]
}
