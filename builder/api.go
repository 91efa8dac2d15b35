// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, ids, cons...). Creates g, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Constructor applies a deterministic graph mutation. Constructors validate
// parameters early and return wrapped sentinel errors, never panic.
type Constructor[T comparable] func(g *core.Graph[T], ids IDFn[T]) error

// BuildGraph creates a new core.Graph with options gopts and applies all
// constructors in order, each receiving ids.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Constructors share the index space of ids, so composing two of them here
// collides on index 0 and fails with ErrDuplicateID. To combine shapes, call
// Apply once per shape with disjoint IDFns.
func BuildGraph[T comparable](gopts []core.GraphOption, ids IDFn[T], cons ...Constructor[T]) (*core.Graph[T], error) {
	g := core.NewGraph[T](gopts...)
	if err := Apply(g, ids, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply[T comparable](g *core.Graph[T], ids IDFn[T], cons ...Constructor[T]) error {
	if ids == nil {
		return fmt.Errorf("BuildGraph: %w", ErrNilIDFn)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, ids); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
