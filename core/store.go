// File: store.go
// Role: Identifier-indexed vertex storage with tombstones and a FIFO recycle queue.
// Determinism:
//   - forEach visits live slots in ascending identifier order.
//   - generateID hands out recycled identifiers oldest-first, then fresh ones.
// Invariants:
//   - A live vertex sits in slots[v.id] and its id never changes.
//   - A freed id is reused only after being drawn from recycled.

package core

import "slices"

// vertexStore owns every vertex of a Graph.
type vertexStore[T comparable] struct {
	slots    []*vertex[T] // nil slot = tombstone
	nextID   int          // next never-used identifier
	recycled []int        // freed identifiers, FIFO
	live     int          // number of non-nil slots
}

// newVertexStore returns an empty store with room for capacity slots.
func newVertexStore[T comparable](capacity int) vertexStore[T] {
	return vertexStore[T]{slots: make([]*vertex[T], 0, capacity)}
}

// insert places v at slot id, growing storage as needed.
// The caller guarantees no live vertex occupies that slot.
func (s *vertexStore[T]) insert(id int, v *vertex[T]) {
	if id >= len(s.slots) {
		s.slots = append(s.slots, make([]*vertex[T], id+1-len(s.slots))...)
	}
	if s.slots[id] == nil {
		s.live++
	}
	s.slots[id] = v
}

// lookupByID returns the live vertex at id. Out-of-range ids and tombstones
// report false.
func (s *vertexStore[T]) lookupByID(id int) (*vertex[T], bool) {
	if id < 0 || id >= len(s.slots) {
		return nil, false
	}
	v := s.slots[id]

	return v, v != nil
}

// lookupByValue scans live slots and returns the identifier of the first
// vertex whose value equals value.
// Complexity: O(len(slots)).
func (s *vertexStore[T]) lookupByValue(value T) (int, bool) {
	for _, v := range s.slots {
		if v != nil && v.value == value {
			return v.id, true
		}
	}

	return noID, false
}

// get resolves a value directly to its vertex.
func (s *vertexStore[T]) get(value T) (*vertex[T], bool) {
	id, ok := s.lookupByValue(value)
	if !ok {
		return nil, false
	}

	return s.slots[id], true
}

// removeAt tombstones slot id. Storage is never shrunk.
func (s *vertexStore[T]) removeAt(id int) {
	if id < 0 || id >= len(s.slots) || s.slots[id] == nil {
		return
	}
	s.slots[id] = nil
	s.live--
}

// forEach calls fn for every live vertex in slot order.
// fn may mutate edge sets and search state but must not remove vertices.
func (s *vertexStore[T]) forEach(fn func(v *vertex[T])) {
	for _, v := range s.slots {
		if v != nil {
			fn(v)
		}
	}
}

// generateID returns the oldest recycled identifier, or a fresh one.
func (s *vertexStore[T]) generateID() int {
	if len(s.recycled) > 0 {
		id := s.recycled[0]
		s.recycled = slices.Delete(s.recycled, 0, 1)
		return id
	}
	id := s.nextID
	s.nextID++

	return id
}

// recycle queues id for reuse by a later generateID.
func (s *vertexStore[T]) recycle(id int) {
	s.recycled = append(s.recycled, id)
}

// len reports the number of live vertices.
func (s *vertexStore[T]) len() int { return s.live }

// valuesOf maps identifiers to their vertex values, appending to dst.
// Identifiers without a live vertex are skipped.
func (s *vertexStore[T]) valuesOf(dst []T, ids []int) []T {
	for _, id := range ids {
		if v, ok := s.lookupByID(id); ok {
			dst = append(dst, v.value)
		}
	}

	return dst
}

// clone deep-copies the store, including identifiers and the recycle queue.
func (s *vertexStore[T]) clone() vertexStore[T] {
	out := vertexStore[T]{
		slots:    make([]*vertex[T], len(s.slots)),
		nextID:   s.nextID,
		recycled: slices.Clone(s.recycled),
		live:     s.live,
	}
	for i, v := range s.slots {
		if v == nil {
			continue
		}
		out.slots[i] = &vertex[T]{
			value:       v.value,
			id:          v.id,
			edges:       slices.Clone(v.edges),
			predecessor: noID,
		}
	}

	return out
}

// edgeSet is a sorted, duplicate-free set of neighbour identifiers.
type edgeSet []int

// has reports whether id is in the set.
func (e edgeSet) has(id int) bool {
	_, found := slices.BinarySearch(e, id)
	return found
}

// add inserts id, keeping the set sorted. Adding an existing id is a no-op.
func (e *edgeSet) add(id int) {
	i, found := slices.BinarySearch(*e, id)
	if found {
		return
	}
	*e = slices.Insert(*e, i, id)
}

// remove deletes id if present.
func (e *edgeSet) remove(id int) {
	i, found := slices.BinarySearch(*e, id)
	if !found {
		return
	}
	*e = slices.Delete(*e, i, i+1)
}
