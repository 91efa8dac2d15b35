// File: methods_iter.go
// Role: Bulk iteration over vertices with their neighbour values.
// Determinism:
//   - Vertices are visited in slot order; neighbours in ascending identifier order.

package core

import "iter"

// ForEach calls fn once per live vertex with its value and neighbour values.
// fn must not add or remove vertices or edges during the call.
func (g *Graph[T]) ForEach(fn func(value T, neighbors []T)) {
	g.vertices.forEach(func(v *vertex[T]) {
		fn(v.value, g.vertices.valuesOf(make([]T, 0, len(v.edges)), v.edges))
	})
}

// All returns an iterator over (value, neighbours) pairs in the same order as
// ForEach. Stopping early is supported. The graph must not be mutated while
// the iterator is being consumed.
func (g *Graph[T]) All() iter.Seq2[T, []T] {
	return func(yield func(T, []T) bool) {
		for _, v := range g.vertices.slots {
			if v == nil {
				continue
			}
			if !yield(v.value, g.vertices.valuesOf(make([]T, 0, len(v.edges)), v.edges)) {
				return
			}
		}
	}
}
