// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	ctx     context.Context
	queue   []queueItem[T]
	visited map[T]bool
	res     *Result[T]
	nbrs    []T // reused neighbour buffer
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
//
// Unlike core.Graph.ShortestPath, BFS keeps its state in the Result and does
// not touch the graph's per-vertex search fields.
func BFS[T comparable](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Start:  start,
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[T]) enqueue(v T, d int, parent *T) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
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
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	nbrs, ok := w.graph.AppendEdges(w.nbrs[:0], item.v)
	if !ok {
		return fmt.Errorf("%w: vertex %v vanished during traversal", ErrNeighbors, item.v)
	}
	w.nbrs = nbrs

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		parent := item.v
		w.enqueue(nbr, nextDepth, &parent)
	}
	return nil
}
