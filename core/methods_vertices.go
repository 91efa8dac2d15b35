// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns values in slot (ascending identifier) order.
//
// Identifier lifecycle:
//   - AddVertex draws an id from the recycle queue first, then from the counter.
//   - RemoveVertex strips back-references from every neighbour, tombstones the
//     slot, then queues the id for reuse.
package core

// ContainsVertex reports whether a vertex equal to value exists.
// Complexity: O(V).
func (g *Graph[T]) ContainsVertex(value T) bool {
	_, ok := g.vertices.lookupByValue(value)
	return ok
}

// AddVertex inserts value as a new vertex with no edges.
//
// Behavior highlights:
//   - Returns false and leaves the graph untouched if an equal value exists.
//   - A recycled identifier always starts with an empty edge set.
//
// Complexity: O(V) for the duplicate scan, O(1) amortized insertion.
func (g *Graph[T]) AddVertex(value T) bool {
	if g.ContainsVertex(value) {
		return false
	}
	id := g.vertices.generateID()
	g.vertices.insert(id, newVertex(value, id))

	return true
}

// RemoveVertex deletes value and every edge incident to it.
//
// Implementation:
//   - Stage 1: Resolve value to its identifier (false if absent).
//   - Stage 2: Remove the identifier from each neighbour's edge set.
//   - Stage 3: Tombstone the slot and recycle the identifier.
//
// Complexity: O(V + deg(v)·log d).
func (g *Graph[T]) RemoveVertex(value T) bool {
	target, ok := g.vertices.get(value)
	if !ok {
		return false
	}

	nbrs := target.edges
	target.edges = nil
	for _, nid := range nbrs {
		if nid == target.id {
			continue // self-loop, already dropped with the set
		}
		if nbr, ok := g.vertices.lookupByID(nid); ok {
			nbr.edges.remove(target.id)
		}
	}
	g.vertices.removeAt(target.id)
	g.vertices.recycle(target.id)

	return true
}

// EdgeCount returns the size of value's edge set, or -1 if value is absent.
// A self-loop contributes one entry.
func (g *Graph[T]) EdgeCount(value T) int {
	v, ok := g.vertices.get(value)
	if !ok {
		return -1
	}

	return len(v.edges)
}

// Degree is an alias of EdgeCount.
func (g *Graph[T]) Degree(value T) int {
	return g.EdgeCount(value)
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph[T]) VertexCount() int {
	return g.vertices.len()
}

// Vertices returns all values in slot order.
// Note that recycled identifiers make slot order differ from insertion order.
func (g *Graph[T]) Vertices() []T {
	out := make([]T, 0, g.vertices.len())
	g.vertices.forEach(func(v *vertex[T]) {
		out = append(out, v.value)
	})

	return out
}
