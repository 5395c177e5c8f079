package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

// ExampleKruskal_square runs Kruskal on a 4-cycle with a heavy diagonal.
func ExampleKruskal_square() {
	g := core.NewGraph(4)
	g.InsertEdge(core.Edge{Head: 1, Tail: 2, Weight: 1})
	g.InsertEdge(core.Edge{Head: 2, Tail: 3, Weight: 2})
	g.InsertEdge(core.Edge{Head: 3, Tail: 4, Weight: 3})
	g.InsertEdge(core.Edge{Head: 1, Tail: 4, Weight: 4})
	g.InsertEdge(core.Edge{Head: 1, Tail: 3, Weight: 10})

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(edges, total)
	// Output: [(1, 2, 1) (2, 3, 2) (3, 4, 3)] 6
}

// ExamplePrim_pentagon demonstrates Prim's algorithm on a 5-vertex ring whose
// heaviest side is left out.
func ExamplePrim_pentagon() {
	g := core.NewGraphFromEdges([]core.Edge{
		{Head: 1, Tail: 2, Weight: 1},
		{Head: 1, Tail: 5, Weight: 12},
		{Head: 2, Tail: 3, Weight: 2},
		{Head: 3, Tail: 4, Weight: 3},
		{Head: 4, Tail: 5, Weight: 5},
	}, 5)

	edges, total, err := prim_kruskal.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.Head, e.Tail)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 1-2 2-3 3-4 4-5
}

// ExampleCompute shows how a disconnected graph is reported.
func ExampleCompute() {
	g := core.NewGraphFromEdges([]core.Edge{
		{Head: 1, Tail: 2, Weight: 3},
		{Head: 2, Tail: 3, Weight: 1},
		{Head: 4, Tail: 5, Weight: 2},
	}, 5)

	for _, m := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		res, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-7s total=%d edges=%d spanning=%t\n", res.Method, res.Total, len(res.Edges), res.Spanning)
	}
	// Output:
	// prim    total=4 edges=2 spanning=false
	// kruskal total=6 edges=3 spanning=false
}
