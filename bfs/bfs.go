// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/mstlab/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On error the partial result is returned
// alongside it.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n+1),
			Parent: make([]int, n+1),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, 0)

	return w.res, w.loop()
}

// Reachable returns the vertices in start's component in ascending order.
func Reachable(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	out := append([]int(nil), res.Order...)
	sort.Ints(out)

	return out, nil
}

// enqueue marks v discovered at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// undiscovered neighbor. Neighbors is a copy, so hooks may read the graph.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.v) {
		if w.res.Depth[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
