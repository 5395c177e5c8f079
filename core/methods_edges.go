package core

// InsertEdge adds the undirected edge e, or updates its weight when Head and
// Tail are already connected. A new edge increments EdgeCount; an update does
// not.
//
// Steps:
//  1. Validate both endpoints (panic with ErrVertexOutOfRange, nothing mutated).
//  2. Upsert Head→Tail into adj[Head].
//  3. Upsert Tail→Head into adj[Tail]; for a self-loop this finds the entry from step 2.
//  4. Count the edge once if step 2 appended.
//
// Complexity: O(deg(Head) + deg(Tail)).
func (g *Graph) InsertEdge(e Edge) {
	g.checkVertex("InsertEdge", e.Head)
	g.checkVertex("InsertEdge", e.Tail)

	g.mu.Lock()
	defer g.mu.Unlock()

	added := g.upsert(e)
	g.upsert(e.Reverse())
	if added {
		g.edgeCount++
	}
}

// RemoveEdge deletes the undirected edge between e.Head and e.Tail; the weight
// of e is ignored. Both stored directions go away and EdgeCount decrements.
//
// Removing an edge that is not present is a caller bug and panics with
// ErrEdgeNotFound before anything is modified.
// Complexity: O(deg(Head) + deg(Tail)).
func (g *Graph) RemoveEdge(e Edge) {
	g.checkVertex("RemoveEdge", e.Head)
	g.checkVertex("RemoveEdge", e.Tail)

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.adj[e.Head], e.Tail) < 0 {
		violation("core: RemoveEdge%v: %w", e, ErrEdgeNotFound)
	}
	g.remove(e)
	if e.Head != e.Tail {
		g.remove(e.Reverse())
	}
	g.edgeCount--
}

// HasEdge reports whether u and v are connected.
// Panics with ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of the edge between u and v, and whether it exists.
// Panics with ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (int64, bool) {
	g.checkVertex("Weight", u)
	g.checkVertex("Weight", v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	if i := indexOf(g.adj[u], v); i >= 0 {
		return g.adj[u][i].Weight, true
	}

	return 0, false
}

// Edges returns every undirected edge exactly once, oriented Head <= Tail,
// ordered by Head and then by adjacency (insertion) order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for v := 1; v <= g.size; v++ {
		for _, e := range g.adj[v] {
			if e.Head <= e.Tail {
				out = append(out, e)
			}
		}
	}

	return out
}
