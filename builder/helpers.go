package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// validateMin reports ErrTooFewVertices when n < min.
func validateMin(method string, n, minN int) error {
	if n < minN {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
	}
	return nil
}

// addVertices inserts ids(0..n-1) in ascending order.
func addVertices[T comparable](method string, g *core.Graph[T], ids IDFn[T], n int) error {
	for i := 0; i < n; i++ {
		id := ids(i)
		if !g.AddVertex(id) {
			return fmt.Errorf("%s: AddVertex(%v) at index %d: %w", method, id, i, ErrDuplicateID)
		}
	}
	return nil
}

// connect puts the edge ids(i)–ids(j).
func connect[T comparable](method string, g *core.Graph[T], ids IDFn[T], i, j int) error {
	u, v := ids(i), ids(j)
	if !g.PutEdge(u, v) {
		return fmt.Errorf("%s: PutEdge(%v,%v): %w", method, u, v, ErrConstructFailed)
	}
	return nil
}
