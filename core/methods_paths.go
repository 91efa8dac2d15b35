// SPDX-License-Identifier: MIT
//
// File: methods_paths.go
// Role: Unweighted shortest paths by breadth-first search over identifiers.
//
// Ordering contract:
//   - Every path is reported from the END vertex back to the START vertex:
//     [v, pred(v), ..., u]. Callers wanting start→end order reverse it.
//
// Determinism:
//   - Neighbours are enqueued in ascending identifier order, so among
//     equal-length paths the one found first by FIFO order is returned.
//
// Side effects:
//   - Every query resets and then rewrites the per-vertex visited/predecessor
//     fields. This is why Graph is not safe for concurrent readers.

package core

import "slices"

// resetSearch clears visited/predecessor on every live vertex.
func (g *Graph[T]) resetSearch() {
	g.vertices.forEach(func(v *vertex[T]) { v.resetSearch() })
}

// search runs BFS from start, recording predecessors.
// Each vertex is enqueued at most once, so it terminates in O(V + E).
func (g *Graph[T]) search(start *vertex[T]) {
	start.visited = true
	queue := []int{start.id}
	for len(queue) > 0 {
		cur, _ := g.vertices.lookupByID(queue[0])
		queue = queue[1:]
		for _, nid := range cur.edges {
			nbr, ok := g.vertices.lookupByID(nid)
			if !ok || nbr.visited {
				continue
			}
			nbr.visited = true
			nbr.predecessor = cur.id
			queue = append(queue, nid)
		}
	}
}

// backtrace follows predecessor links from end until a vertex without one.
func (g *Graph[T]) backtrace(end *vertex[T]) []T {
	path := []T{end.value}
	for cur := end; cur.predecessor != noID; {
		prev, ok := g.vertices.lookupByID(cur.predecessor)
		if !ok {
			break
		}
		path = append(path, prev.value)
		cur = prev
	}

	return path
}

// ShortestPath returns the values along an unweighted shortest path between
// u and v, ordered from v back to u.
//
// Behavior highlights:
//   - Empty result if u or v is absent, or if either has no edges at all.
//   - ShortestPath(u, u) is [u] when u has at least one edge.
//   - If v is not reachable from u the result is the single element [v].
//     This is indistinguishable from a zero-length path by the return value
//     alone; use ReachablePath when the difference matters.
//
// Complexity: O(V + E) per call (plus O(V) value lookups).
func (g *Graph[T]) ShortestPath(u, v T) []T {
	g.resetSearch()
	start, end, ok := g.endpoints(u, v)
	if !ok {
		return nil
	}
	if len(start.edges) == 0 || len(end.edges) == 0 {
		return nil
	}
	g.search(start)

	return g.backtrace(end)
}

// ReachablePath is ShortestPath with an explicit reachability flag.
//
// It returns the same v→u ordered path, with ok == false when either value is
// absent or v cannot be reached from u. ReachablePath(u, u) is ([u], true)
// for any present u, edges or not.
func (g *Graph[T]) ReachablePath(u, v T) ([]T, bool) {
	g.resetSearch()
	start, end, ok := g.endpoints(u, v)
	if !ok {
		return nil, false
	}
	if start == end {
		return []T{start.value}, true
	}
	if len(start.edges) == 0 || len(end.edges) == 0 {
		return nil, false
	}
	g.search(start)
	if !end.visited {
		return nil, false
	}

	return g.backtrace(end), true
}

// Reachable reports whether v can be reached from u.
func (g *Graph[T]) Reachable(u, v T) bool {
	_, ok := g.ReachablePath(u, v)
	return ok
}

// ShortestPathTree returns ShortestPath(u, x) for every vertex x other than u,
// skipping empty results, sorted ascending by path length.
//
// Implementation:
//   - Stage 1: Reset search state and resolve u (empty result if absent or isolated).
//   - Stage 2: Run a single BFS from u; it is the same search ShortestPath(u, x)
//     would repeat for each x.
//   - Stage 3: Backtrace every other vertex that has edges, in slot order.
//   - Stage 4: Stable sort by length, so equal lengths keep slot order.
//
// Notes:
//   - Vertices with edges but outside u's component appear as single-element
//     paths [x], matching ShortestPath.
//
// Complexity: O(V + E + V·depth + P log P) where P is the number of paths.
func (g *Graph[T]) ShortestPathTree(u T) [][]T {
	g.resetSearch()
	start, ok := g.vertices.get(u)
	if !ok || len(start.edges) == 0 {
		return nil
	}
	g.search(start)

	var paths [][]T
	g.vertices.forEach(func(x *vertex[T]) {
		if x == start || len(x.edges) == 0 {
			return
		}
		paths = append(paths, g.backtrace(x))
	})
	slices.SortStableFunc(paths, func(a, b []T) int {
		return len(a) - len(b)
	})

	return paths
}
