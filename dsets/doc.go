// Package dsets provides a fixed-size disjoint-set (union-find) structure over
// the integer labels 1..N, with union-by-size and path compression.
//
// What & Why
//
//   - A DisjointSet partitions {1..N} into disjoint subsets. Each subset is a
//     tree; its root is the canonical name of the subset.
//   - Kruskal's MST algorithm uses it to decide in near-constant time whether
//     an edge would close a cycle (both endpoints already share a root).
//
// Operations
//
//   - New(size)          — size singleton sets {1}, {2}, …, {size}.
//   - Find(x)            — root of x; compresses the visited path.
//   - Join(r, s)         — merge two roots; the smaller tree goes under the larger.
//   - Union(a, b)        — resolve both roots via Find, then Join if they differ.
//   - Count, SizeOf, Connected, Depth, Snapshot, Sets — read helpers.
//
// # Contract
//
// Labels are one-based at the API boundary and zero-based internally. Passing a
// label outside [1, N], a non-root to Join, or the same root twice to Join is a
// programming error: the call panics with an error wrapping ErrIndexOutOfRange,
// ErrNotRoot or ErrInvalidArgument, before any slot is modified. Recover and use
// errors.Is to classify such a panic in tests.
//
// # Complexity
//
// With both union-by-size and path compression, any sequence of m operations
// over n elements costs O(m·α(n)) where α is the inverse Ackermann function.
// Find is iterative (walk to the root, then walk again re-pointing every slot),
// so long chains never exhaust the stack.
//
// A DisjointSet is not safe for concurrent use: even Find mutates state.
package dsets
