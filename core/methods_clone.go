// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries identifiers, the id counter and the recycle queue, so the
//     clone assigns the same identifiers as the source would.

package core

// Clone returns a deep copy of g. Search state is not copied.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{vertices: g.vertices.clone()}
}

// Clear removes every vertex and resets identifier allocation to zero.
func (g *Graph[T]) Clear() {
	g.vertices = newVertexStore[T](0)
}
