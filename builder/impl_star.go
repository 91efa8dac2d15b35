// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the center; leaves are 1..n-1, connected in ascending order.

package builder

import "github.com/katalvlaran/ugraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center ids(0) and n-1 leaves.
func Star[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T]) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, ids, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(methodStar, g, ids, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
