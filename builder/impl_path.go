// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices ids(0..n-1) in ascending order.
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.

package builder

import "github.com/katalvlaran/ugraph/core"

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T]) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, ids, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(methodPath, g, ids, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
