package core_test

import (
	"testing"

	"github.com/katalvlaran/mstlab/core"
	"github.com/stretchr/testify/require"
)

// requireViolation runs fn and asserts that it panics with an error wrapping target.
func requireViolation(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// requireSymmetric checks the mirrored-storage invariant of g: every entry u→v
// has a twin v→u with the same weight, and the number of unordered pairs equals
// EdgeCount.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	pairs := 0
	for u := 1; u <= g.VertexCount(); u++ {
		for _, e := range g.Incident(u) {
			require.Equal(t, u, e.Head, "edge stored at %d has head %d", u, e.Head)
			w, ok := g.Weight(e.Tail, u)
			require.True(t, ok, "missing mirror of %v", e)
			require.Equal(t, e.Weight, w, "mirror of %v has weight %d", e, w)
			if e.Head <= e.Tail {
				pairs++
			}
		}
	}
	require.Equal(t, g.EdgeCount(), pairs)
}

// square returns 1-2-3-4-1 with a 1-3 diagonal.
func square() *core.Graph {
	return core.NewGraphFromEdges([]core.Edge{
		{Head: 1, Tail: 2, Weight: 1},
		{Head: 2, Tail: 3, Weight: 2},
		{Head: 3, Tail: 4, Weight: 3},
		{Head: 1, Tail: 4, Weight: 4},
		{Head: 1, Tail: 3, Weight: 10},
	}, 4)
}
