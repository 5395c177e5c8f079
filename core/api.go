package core

// NewGraph returns a graph with vertexCount isolated vertices 1..vertexCount.
// Panics with ErrInvalidArgument if vertexCount < 1.
// Complexity: O(vertexCount).
func NewGraph(vertexCount int) *Graph {
	if vertexCount < 1 {
		violation("core: NewGraph(%d): %w", vertexCount, ErrInvalidArgument)
	}

	return &Graph{
		adj:  make([][]Edge, vertexCount+1),
		size: vertexCount,
	}
}

// NewGraphFromEdges builds a graph with vertexCount vertices and inserts the
// edges in order. A later edge between an already connected pair overwrites
// the earlier weight, exactly as InsertEdge does.
// Complexity: O(vertexCount + Σ InsertEdge).
func NewGraphFromEdges(edges []Edge, vertexCount int) *Graph {
	g := NewGraph(vertexCount)
	for _, e := range edges {
		g.InsertEdge(e)
	}

	return g
}

// VertexCount returns N, the number of vertices. It never changes.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	// size is immutable after construction; no lock needed.
	return g.size
}

// EdgeCount returns the number of undirected edges (self-loops included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
