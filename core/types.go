// Package core defines the generic undirected Graph container, its vertex
// storage, and the functional options used to construct it.
//
// This file declares vertex, Graph, GraphOption and the NewGraph constructor.
// The vertex store lives in store.go; operations are split by concern into
// methods_*.go files.
package core

// noID marks the absence of an identifier (e.g. a vertex without a BFS predecessor).
const noID = -1

// vertex is a single node owned by a vertexStore.
//
// edges holds neighbour identifiers sorted ascending and free of duplicates.
// visited and predecessor are transient BFS fields, reset on every path query.
type vertex[T comparable] struct {
	value T
	id    int
	edges edgeSet

	visited     bool
	predecessor int
}

// newVertex returns a vertex with an empty edge set and cleared BFS state.
func newVertex[T comparable](value T, id int) *vertex[T] {
	return &vertex[T]{value: value, id: id, predecessor: noID}
}

// resetSearch clears the transient BFS fields.
func (v *vertex[T]) resetSearch() {
	v.visited = false
	v.predecessor = noID
}

// GraphOption configures a Graph before first use.
type GraphOption func(o *graphOptions)

// graphOptions is the resolved construction-time configuration.
type graphOptions struct {
	capacity int
}

// WithCapacity preallocates storage for n vertex slots. Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is an in-memory undirected graph over values of type T.
//
// Each value is stored once and receives an integer identifier that stays
// stable while the vertex lives. Identifiers of removed vertices are recycled
// in FIFO order. Edges are unweighted, undirected and never parallel.
//
// Graph is not safe for concurrent use. Path queries mutate per-vertex search
// state, so even read-looking calls must be serialised by the caller.
type Graph[T comparable] struct {
	vertices vertexStore[T]
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(capacity).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{vertices: newVertexStore[T](o.capacity)}
}
