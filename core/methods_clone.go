package core

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.size)
	for v := 1; v <= g.size; v++ {
		if len(g.adj[v]) == 0 {
			continue
		}
		clone.adj[v] = make([]Edge, len(g.adj[v]))
		copy(clone.adj[v], g.adj[v])
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every edge and keeps the vertex set.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v := range g.adj {
		g.adj[v] = nil
	}
	g.edgeCount = 0
}
