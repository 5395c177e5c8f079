package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/mstlab/bfs"
	"github.com/katalvlaran/mstlab/core"
)

// chain builds 1–2–…–n with unit weights.
func chain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		g.InsertEdge(core.Edge{Head: i, Tail: i + 1, Weight: 1})
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex out of range, on both sides
	g := core.NewGraph(3)
	for _, start := range []int{0, 4, -1} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", start, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(core.NewGraph(1), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[1]; d != 0 {
		t.Errorf("Depth[1] = %d; want 0", d)
	}
	if p := res.Parent[1]; p != 0 {
		t.Errorf("Parent[1] = %d; want 0", p)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 1–2–3–4–1
	g := core.NewGraphFromEdges([]core.Edge{
		{Head: 1, Tail: 2, Weight: 5},
		{Head: 2, Tail: 3, Weight: 5},
		{Head: 3, Tail: 4, Weight: 5},
		{Head: 4, Tail: 1, Weight: 5},
	}, 4)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{bfs.Unreached, 0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{0, 0, 1, 2, 1}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(5)
	g.InsertEdge(core.Edge{Head: 1, Tail: 2, Weight: 3}) // component 1
	g.InsertEdge(core.Edge{Head: 4, Tail: 5, Weight: 2}) // component 2

	res1, _ := bfs.BFS(g, 1)
	if !reflect.DeepEqual(res1.Order, []int{1, 2}) {
		t.Errorf("From 1: got %v; want [1 2]", res1.Order)
	}
	for _, v := range []int{3, 4, 5} {
		if res1.Reached(v) {
			t.Errorf("From 1: vertex %d should be unreached", v)
		}
	}
	res5, _ := bfs.BFS(g, 5)
	if !reflect.DeepEqual(res5.Order, []int{5, 4}) {
		t.Errorf("From 5: got %v; want [5 4]", res5.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	// depth = 1 should only visit 1,2
	if res, _ := bfs.BFS(g, 1, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{1, 2}) {
		t.Errorf("MaxDepth=1: got %v; want [1 2]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, 1, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{1, 2, 3}) {
		t.Errorf("MaxDepth=0: got %v; want [1 2 3]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, 1, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{1, 2, 3}) {
		t.Errorf("MaxDepth=10: got %v; want [1 2 3]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(3)
	// filter out 2→3
	res, _ := bfs.BFS(g, 1,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 2 && nbr == 3)
		}),
	)
	if want := []int{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndDuplicateInsert ensures that loops and re-inserted pairs do not enqueue twice.
func TestBFS_SelfLoopAndDuplicateInsert(t *testing.T) {
	g := core.NewGraph(2)
	g.InsertEdge(core.Edge{Head: 1, Tail: 1, Weight: 1}) // self-loop
	g.InsertEdge(core.Edge{Head: 1, Tail: 2, Weight: 1})
	g.InsertEdge(core.Edge{Head: 2, Tail: 1, Weight: 9}) // weight update
	res, _ := bfs.BFS(g, 1)
	if want := []int{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Update: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(3)

	var enq, deq, vis []string
	makeEntry := func(prefix string, v, d int) string {
		return prefix + ":" + strconv.Itoa(v) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, 1,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, makeEntry("e", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, makeEntry("d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, makeEntry("v", v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(enq) != 3 || len(deq) != 3 || len(vis) != 3 {
		t.Fatalf("hook counts = %d/%d/%d; want 3/3/3", len(enq), len(deq), len(vis))
	}

	// We expect BFS depths 1@0, 2@1, 3@2
	wantDepths := []string{"1@0", "2@1", "3@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitAbort checks that a hook error stops the search and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(chain(5), 1, bfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo covers trivial (start→start), multi-hop and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(4)
	g.InsertEdge(core.Edge{Head: 1, Tail: 4, Weight: 1})
	res, _ := bfs.BFS(g, 1)
	if path, _ := res.PathTo(1); !reflect.DeepEqual(path, []int{1}) {
		t.Errorf("PathTo start: got %v; want [1]", path)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{1, 2, 3}) {
		t.Errorf("PathTo 3: got %v; want [1 2 3]", path)
	}

	iso := core.NewGraph(2)
	res, _ = bfs.BFS(iso, 1)
	_, err := res.PathTo(2)
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
	if _, err = res.PathTo(99); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo out of range: want ErrNoPath, got %v", err)
	}
}

// TestReachable checks the sorted component listing.
func TestReachable(t *testing.T) {
	g := core.NewGraph(6)
	g.InsertEdge(core.Edge{Head: 5, Tail: 2, Weight: 1})
	g.InsertEdge(core.Edge{Head: 2, Tail: 6, Weight: 1})
	g.InsertEdge(core.Edge{Head: 1, Tail: 3, Weight: 1})

	got, err := bfs.Reachable(g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable(5) = %v; want %v", got, want)
	}
	if got, _ = bfs.Reachable(g, 4); !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("Reachable(4) = %v; want [4]", got)
	}
	if _, err = bfs.Reachable(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("Reachable(7): want ErrStartVertexNotFound, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func(start int) {
			res, err := bfs.BFS(g, start)
			if err == nil && len(res.Order) != 50 {
				err = fmt.Errorf("start %d: visited %d vertices", start, len(res.Order))
			}
			errs <- err
		}(i + 1)
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
