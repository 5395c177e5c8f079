package edgelist

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// EdgeRecord is one undirected edge as stored in a file.
type EdgeRecord struct {
	Head   int   `yaml:"head"`
	Tail   int   `yaml:"tail"`
	Weight int64 `yaml:"weight"`
}

// Document is the decoded form of an edge list.
type Document struct {
	Vertices int          `yaml:"vertices"`
	Edges    []EdgeRecord `yaml:"edges"`
}

// Validate checks the vertex count and every endpoint.
func (d *Document) Validate() error {
	if d.Vertices < 1 {
		return fmt.Errorf("%w: vertex count %d", ErrVertexRange, d.Vertices)
	}
	for i, e := range d.Edges {
		if err := d.checkEdge(e); err != nil {
			return fmt.Errorf("edge #%d: %w", i+1, err)
		}
	}

	return nil
}

func (d *Document) checkEdge(e EdgeRecord) error {
	for _, v := range [2]int{e.Head, e.Tail} {
		if v < 1 || v > d.Vertices {
			return fmt.Errorf("%w: %d not in [1, %d]", ErrVertexRange, v, d.Vertices)
		}
	}

	return nil
}

// Graph builds a core.Graph from d, inserting edges in file order. A pair
// that appears twice keeps the later weight. d must be valid.
func (d *Document) Graph() *core.Graph {
	g := core.NewGraph(d.Vertices)
	for _, e := range d.Edges {
		g.InsertEdge(core.Edge{Head: e.Head, Tail: e.Tail, Weight: e.Weight})
	}

	return g
}

// FromGraph captures g as a Document with each undirected edge listed once.
func FromGraph(g *core.Graph) *Document {
	edges := g.Edges()
	doc := &Document{
		Vertices: g.VertexCount(),
		Edges:    make([]EdgeRecord, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = EdgeRecord{Head: e.Head, Tail: e.Tail, Weight: e.Weight}
	}

	return doc
}
