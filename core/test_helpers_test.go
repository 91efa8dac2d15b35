// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
)

// Common vertex values used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexF = "F"
	VertexX = "X"
)

// newChain builds A–B–C–D with identifiers 0..3.
func newChain(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.True(t, g.AddVertex(v), "AddVertex(%s)", v)
	}
	mustEdge(t, g, VertexA, VertexB)
	mustEdge(t, g, VertexB, VertexC)
	mustEdge(t, g, VertexC, VertexD)

	return g
}

// mustEdge connects u and v or fails the test.
func mustEdge[T comparable](t testing.TB, g *core.Graph[T], u, v T) {
	t.Helper()
	require.True(t, g.PutEdge(u, v), "PutEdge(%v,%v)", u, v)
}

// requireSymmetric asserts that every adjacency is mirrored.
func requireSymmetric[T comparable](t testing.TB, g *core.Graph[T]) {
	t.Helper()
	g.ForEach(func(v T, nbrs []T) {
		for _, n := range nbrs {
			back, ok := g.Edges(n)
			require.True(t, ok, "neighbour %v of %v must exist", n, v)
			require.Contains(t, back, v, "edge %v–%v is one-sided", v, n)
		}
	})
}
