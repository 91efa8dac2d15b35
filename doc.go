// Package ugraph is a small in-memory playground for undirected graphs:
// add and remove vertices, connect them, and ask breadth-first questions
// about how they are linked.
//
// 🚀 What is inside?
//
//	A generic, dependency-light library that brings together:
//		• Core container: Graph[T] keyed by any comparable value, with
//		  recycled integer identifiers and symmetric, duplicate-free edges
//		• Shortest paths: unweighted BFS paths and the full shortest-path tree
//		• Traversal: hook-driven BFS with depth limits, filters and cancellation
//		• Builders: path, cycle, star, complete and grid generators
//
// Subpackages:
//
//	core/    — Graph[T], vertex store, edge sets, ShortestPath, ShortestPathTree
//	bfs/     — configurable breadth-first walker returning order, depth and parents
//	builder/ — deterministic shape constructors with pluggable vertex naming
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// ShortestPath(A, D) returns [D B A]: paths are listed from the end vertex
// back to the start, and ties follow identifier order.
//
// The ugraph command (cmd/ugraph) exposes the same operations on graphs
// given as --edge flags or a named --shape.
//
//	go install github.com/katalvlaran/ugraph/cmd/ugraph@latest
package ugraph
