// File: methods_edges.go
// Role: Edge lifecycle & queries: PutEdge/RemoveEdge/ContainsEdge, neighbour
//       listings and the highest-degree query.
// Determinism:
//   - Neighbour values are always reported in ascending identifier order.
//   - HighestEdgeCount breaks ties by slot order (first wins).
// Invariants:
//   - Edge sets are symmetric: u lists v iff v lists u.
//   - No parallel edges; a self-loop is one entry in its vertex's set.

package core

// endpoints resolves both values to their vertices.
func (g *Graph[T]) endpoints(u, v T) (*vertex[T], *vertex[T], bool) {
	uv, ok := g.vertices.get(u)
	if !ok {
		return nil, nil, false
	}
	vv, ok := g.vertices.get(v)
	if !ok {
		return nil, nil, false
	}

	return uv, vv, true
}

// ContainsEdge reports whether u and v are adjacent.
//
// Both directions are checked rather than assumed, so a one-sided entry
// (which the public API never produces) reads as "no edge".
// Returns false if either value is absent.
func (g *Graph[T]) ContainsEdge(u, v T) bool {
	uv, vv, ok := g.endpoints(u, v)
	if !ok {
		return false
	}

	return uv.edges.has(vv.id) && vv.edges.has(uv.id)
}

// PutEdge connects u and v.
//
// Behavior highlights:
//   - Idempotent: putting an existing edge changes nothing and still returns true.
//   - PutEdge(x, x) records a self-loop once.
//
// Returns false if either value is absent.
// Complexity: O(V) lookup + O(d) insertion.
func (g *Graph[T]) PutEdge(u, v T) bool {
	uv, vv, ok := g.endpoints(u, v)
	if !ok {
		return false
	}
	uv.edges.add(vv.id)
	vv.edges.add(uv.id)

	return true
}

// RemoveEdge disconnects u and v. Removing an edge that does not exist is a
// no-op that still returns true. Returns false if either value is absent.
func (g *Graph[T]) RemoveEdge(u, v T) bool {
	uv, vv, ok := g.endpoints(u, v)
	if !ok {
		return false
	}
	uv.edges.remove(vv.id)
	vv.edges.remove(uv.id)

	return true
}

// Edges returns the values adjacent to value, in ascending identifier order.
// The boolean is false if value is absent.
func (g *Graph[T]) Edges(value T) ([]T, bool) {
	v, ok := g.vertices.get(value)
	if !ok {
		return nil, false
	}

	return g.vertices.valuesOf(make([]T, 0, len(v.edges)), v.edges), true
}

// AppendEdges appends the neighbours of value to dst and returns the extended
// slice. If value is absent dst is returned unchanged with false.
func (g *Graph[T]) AppendEdges(dst []T, value T) ([]T, bool) {
	v, ok := g.vertices.get(value)
	if !ok {
		return dst, false
	}

	return g.vertices.valuesOf(dst, v.edges), true
}

// HighestEdgeCount finds the vertex with the largest edge set.
//
// Implementation:
//   - Stage 1: Walk live slots in order, keeping the first vertex whose edge
//     count strictly exceeds the best seen so far.
//   - Stage 2: Resolve the winner's neighbours to values.
//
// Returns:
//   - value of the winning vertex and its neighbours (ascending identifier order).
//   - false if the graph has no vertices.
//
// Notes:
//   - When every vertex has degree 0 the first live vertex wins.
func (g *Graph[T]) HighestEdgeCount() (T, []T, bool) {
	var best *vertex[T]
	g.vertices.forEach(func(v *vertex[T]) {
		if best == nil || len(v.edges) > len(best.edges) {
			best = v
		}
	})
	if best == nil {
		var zero T
		return zero, nil, false
	}

	return best.value, g.vertices.valuesOf(make([]T, 0, len(best.edges)), best.edges), true
}

// EdgeTotal returns the number of distinct undirected edges. O(V).
func (g *Graph[T]) EdgeTotal() int {
	var ends, loops int
	g.vertices.forEach(func(v *vertex[T]) {
		ends += len(v.edges)
		if v.edges.has(v.id) {
			loops++
		}
	})

	return (ends-loops)/2 + loops
}
