// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - Cell (r, c) has index r*cols + c; vertices are added row-major.
//   - For each cell in row-major order, emits the right edge then the down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	minGridSize = 2
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid[T comparable](rows, cols int) Constructor[T] {
	return func(g *core.Graph[T], ids IDFn[T]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := validateMin(methodGrid, rows*cols, minGridSize); err != nil {
			return err
		}
		if err := addVertices(methodGrid, g, ids, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if c+1 < cols {
					if err := connect(methodGrid, g, ids, idx, idx+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, ids, idx, idx+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
