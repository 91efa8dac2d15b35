// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i–(i+1 mod n) for i=0..n-1; the last edge closes the ring.

package builder

import "github.com/katalvlaran/ugraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T]) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, ids, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, ids, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
