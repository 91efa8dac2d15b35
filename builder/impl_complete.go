// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Emits every pair i<j in lexicographic (i, j) order.
//
// Complexity:
//   - O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/ugraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T]) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, ids, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, ids, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
