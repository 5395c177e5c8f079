// Package edgelist reads and writes weighted undirected graphs as edge lists.
//
// Two formats are supported:
//
//	text:  first non-comment line is the vertex count N, then one "u v w"
//	       triple per line; '#' starts a comment, blank lines are ignored.
//	yaml:  a document with "vertices: N" and "edges: [{head, tail, weight}]".
//
// Vertices are 1..N. Parsing validates ranges and syntax and reports
// ErrSyntax, ErrVertexRange or ErrUnknownFormat wrapped with line context.
package edgelist
