package edgelist

import "errors"

var (
	// ErrSyntax indicates a malformed line or document.
	ErrSyntax = errors.New("edgelist: syntax error")

	// ErrVertexRange indicates a vertex count below 1 or an endpoint outside [1, N].
	ErrVertexRange = errors.New("edgelist: vertex out of range")

	// ErrUnknownFormat indicates a format name other than text or yaml.
	ErrUnknownFormat = errors.New("edgelist: unknown format")
)
