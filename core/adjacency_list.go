package core

// Low-level helpers over one adjacency list. Callers hold g.mu.

// indexOf returns the position in list of the edge Head→tail, or -1.
// Complexity: O(len(list)).
func indexOf(list []Edge, tail int) int {
	for i := range list {
		if list[i].Tail == tail {
			return i
		}
	}

	return -1
}

// upsert appends e to adj[e.Head] or overwrites the weight of the existing
// entry for the same pair. It reports whether a new entry was appended.
func (g *Graph) upsert(e Edge) bool {
	if i := indexOf(g.adj[e.Head], e.Tail); i >= 0 {
		g.adj[e.Head][i].Weight = e.Weight

		return false
	}
	g.adj[e.Head] = append(g.adj[e.Head], e)

	return true
}

// remove deletes the entry Head→Tail from adj[e.Head], preserving the order
// of the remaining entries. It reports whether an entry was found.
func (g *Graph) remove(e Edge) bool {
	list := g.adj[e.Head]
	i := indexOf(list, e.Tail)
	if i < 0 {
		return false
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = Edge{}
	g.adj[e.Head] = list[:len(list)-1]

	return true
}
