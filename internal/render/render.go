// Package render formats graphs, spanning trees and disjoint sets as the
// fixed-width text listings printed by the mst command.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dsets"
)

const ruleWidth = 66

// Adjacency writes every vertex with its incident (tail, weight) pairs in
// insertion order, framed by dashed rules:
//
//	------------------------------------------------------------------
//	Vertex  adjacency lists
//	------------------------------------------------------------------
//	   1 : ( 2,  1) ( 4,  4)
//	...
func Adjacency(w io.Writer, g *core.Graph) error {
	rule := strings.Repeat("-", ruleWidth) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("Vertex  adjacency lists\n")
	b.WriteString(rule)
	g.Read(func(v core.View) {
		for u := 1; u <= v.VertexCount(); u++ {
			fmt.Fprintf(&b, "%4d : ", u)
			for _, e := range v.Incident(u) {
				fmt.Fprintf(&b, "(%2d, %2d) ", e.Tail, e.Weight)
			}
			b.WriteString("\n")
		}
	})
	b.WriteString(rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// MST writes title, one (head, tail, weight) triple per line and the total.
func MST(w io.Writer, title string, edges []core.Edge, total int64) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&b, "  %v\n", e)
	}
	fmt.Fprintf(&b, "  total weight: %d\n", total)

	_, err := io.WriteString(w, b.String())
	return err
}

// Sets writes the labels 1..N on one line and the signed snapshot below,
// both in four-wide columns, after a blank line.
func Sets(w io.Writer, ds *dsets.DisjointSet) error {
	var b strings.Builder
	b.WriteString("\n")
	for i := 1; i <= ds.Len(); i++ {
		fmt.Fprintf(&b, "%4d", i)
	}
	b.WriteString("\n")
	for _, x := range ds.Snapshot() {
		fmt.Fprintf(&b, "%4d", x)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
