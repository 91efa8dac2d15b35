// Package builder provides deterministic topology constructors for
// core.Graph fixtures: paths, cycles, stars, complete graphs and grids.
//
// Every constructor is a Constructor[T] closure applied by BuildGraph to a
// fresh graph. Vertex values come from an IDFn[T] that maps a zero-based
// index to a value, so the same constructor builds Graph[int], Graph[string]
// or any other comparable type.
//
// Guarantees:
//
//   - Vertices are added in ascending index order, so index i gets graph
//     identifier i when the constructor runs first on an empty graph.
//   - Edges are emitted in a documented, stable order.
//   - Invalid parameters and ID collisions are reported as wrapped sentinel
//     errors; constructors never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, builder.ExcelColumnIDs, builder.Cycle[string](5))
//	// A–B–C–D–E–A
package builder
