// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method tag + offending values).

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrDuplicateID indicates the IDFn produced a value already present in the graph.
	ErrDuplicateID = errors.New("builder: duplicate vertex id")

	// ErrNilIDFn indicates BuildGraph was called without an IDFn.
	ErrNilIDFn = errors.New("builder: nil id function")

	// ErrConstructFailed indicates a constructor could not complete (e.g. nil constructor).
	ErrConstructFailed = errors.New("builder: construction failed")
)
