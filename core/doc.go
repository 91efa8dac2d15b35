// Package core provides a generic, in-memory, undirected Graph container with
// identifier recycling and breadth-first shortest paths.
//
// The Graph G = (V,E) stores values of any comparable type T:
//
//   - Each value appears at most once; AddVertex rejects duplicates.
//   - Every vertex gets an integer identifier, stable while the vertex lives.
//   - Removed identifiers are recycled first-in first-out; a reused identifier
//     always refers to a fresh vertex with no edges.
//   - Edges are unweighted and undirected, stored as sorted sets of neighbour
//     identifiers and kept symmetric.
//
// Storage layout:
//
//	slots:    [ v0 | nil | v2 | v3 ]   nil = tombstone, index = identifier
//	recycled: [ 1 ]                    next AddVertex reuses 1
//	nextID:   4                        then 4, 5, ...
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v T) bool           // false on duplicate
//	ContainsVertex(v T) bool
//	RemoveVertex(v T) bool        // false if absent; drops incident edges
//
//	// Edge lifecycle
//	PutEdge(u, v T) bool          // idempotent
//	RemoveEdge(u, v T) bool       // idempotent
//	ContainsEdge(u, v T) bool     // checks both directions
//
//	// Queries
//	EdgeCount(v T) int            // -1 if absent; Degree is an alias
//	Edges(v T) ([]T, bool)
//	HighestEdgeCount() (T, []T, bool)
//
//	// Breadth-first search
//	ShortestPath(u, v T) []T              // ordered v … u
//	ShortestPathTree(u T) [][]T           // ascending by length
//	ReachablePath(u, v T) ([]T, bool)     // explicit reachability
//
//	// Iteration & debugging
//	ForEach(fn), All(), WriteTo(w), String()
//
// Errors:
//
//	The container never panics on bad input and never returns errors.
//	Absence is reported by false, by -1 for counts, or by an empty path.
//
// Determinism:
//
//	Vertices are always visited in slot (ascending identifier) order and
//	neighbours in ascending identifier order. Tie-breaks in HighestEdgeCount
//	and among equal-length shortest paths follow from that order.
//
// Concurrency:
//
//	Graph is not safe for concurrent use, including concurrent path queries,
//	which write per-vertex search state. Guard a shared Graph with a single
//	sync.Mutex.
package core
