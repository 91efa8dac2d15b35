package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexStore_GenerateIDRecyclesFIFO(t *testing.T) {
	s := newVertexStore[string](0)
	require.Equal(t, 0, s.generateID())
	require.Equal(t, 1, s.generateID())
	require.Equal(t, 2, s.generateID())

	s.recycle(1)
	s.recycle(0)
	assert.Equal(t, 1, s.generateID(), "oldest recycled id first")
	assert.Equal(t, 0, s.generateID())
	assert.Equal(t, 3, s.generateID(), "counter resumes once queue is drained")
}

func TestVertexStore_InsertGrowsAndLookups(t *testing.T) {
	s := newVertexStore[string](0)
	s.insert(5, newVertex("F", 5))

	assert.Len(t, s.slots, 6)
	assert.Equal(t, 1, s.len())

	v, ok := s.lookupByID(5)
	require.True(t, ok)
	assert.Equal(t, "F", v.value)

	for _, id := range []int{-1, 0, 3, 6, 100} {
		_, ok = s.lookupByID(id)
		assert.False(t, ok, "id %d", id)
	}

	id, ok := s.lookupByValue("F")
	require.True(t, ok)
	assert.Equal(t, 5, id)

	_, ok = s.lookupByValue("missing")
	assert.False(t, ok)
}

func TestVertexStore_RemoveAtTombstones(t *testing.T) {
	s := newVertexStore[int](4)
	for i := 0; i < 3; i++ {
		s.insert(s.generateID(), newVertex(i*10, i))
	}
	s.removeAt(1)
	s.removeAt(1) // second removal is a no-op
	s.removeAt(42)

	assert.Equal(t, 2, s.len())
	assert.Len(t, s.slots, 3, "storage is never shrunk")
	_, ok := s.lookupByID(1)
	assert.False(t, ok)
	_, ok = s.lookupByValue(10)
	assert.False(t, ok)

	var seen []int
	s.forEach(func(v *vertex[int]) { seen = append(seen, v.id) })
	assert.Equal(t, []int{0, 2}, seen)
}

func TestVertexStore_ValuesOfSkipsDead(t *testing.T) {
	s := newVertexStore[string](0)
	s.insert(0, newVertex("A", 0))
	s.insert(2, newVertex("C", 2))

	got := s.valuesOf([]string{"x"}, []int{2, 1, 0, 7})
	assert.Equal(t, []string{"x", "C", "A"}, got)
}

func TestVertexStore_CloneIsDeep(t *testing.T) {
	s := newVertexStore[string](0)
	a, b := newVertex("A", s.generateID()), newVertex("B", s.generateID())
	s.insert(a.id, a)
	s.insert(b.id, b)
	a.edges.add(b.id)
	b.edges.add(a.id)
	a.visited = true
	s.recycle(s.generateID())

	c := s.clone()
	ca, _ := c.lookupByID(0)
	ca.edges.remove(1)

	assert.True(t, a.edges.has(1), "source edges untouched")
	assert.False(t, ca.visited, "search state is not cloned")
	assert.Equal(t, s.nextID, c.nextID)
	assert.Equal(t, s.recycled, c.recycled)
	assert.Equal(t, s.len(), c.len())
}

func TestEdgeSet_SortedUnique(t *testing.T) {
	var e edgeSet
	for _, id := range []int{5, 1, 3, 1, 5, 0} {
		e.add(id)
	}
	assert.Equal(t, edgeSet{0, 1, 3, 5}, e)
	assert.True(t, e.has(3))
	assert.False(t, e.has(2))

	e.remove(3)
	e.remove(42)
	assert.Equal(t, edgeSet{0, 1, 5}, e)
}

// TestContainsEdge_OneSidedEntryIsNotAnEdge corrupts one edge set directly and
// checks that adjacency requires both directions.
func TestContainsEdge_OneSidedEntryIsNotAnEdge(t *testing.T) {
	g := NewGraph[string]()
	require.True(t, g.AddVertex("A"))
	require.True(t, g.AddVertex("B"))

	a, ok := g.vertices.get("A")
	require.True(t, ok)
	a.edges.add(1)

	assert.False(t, g.ContainsEdge("A", "B"))
	assert.False(t, g.ContainsEdge("B", "A"))

	require.True(t, g.PutEdge("A", "B"))
	assert.True(t, g.ContainsEdge("A", "B"))
	assert.True(t, g.ContainsEdge("B", "A"))
}

// TestVertexStore_RecycleQueueReusesStorage churns remove/add cycles and
// checks the queue stays bounded by its peak length.
func TestVertexStore_RecycleQueueReusesStorage(t *testing.T) {
	s := newVertexStore[string](0)
	for i := 0; i < 4; i++ {
		s.generateID()
	}
	s.recycle(3)
	s.recycle(1)
	peak := cap(s.recycled)

	for i := 0; i < 10000; i++ {
		id := s.generateID()
		s.recycle(id)
	}
	assert.LessOrEqual(t, cap(s.recycled), peak)
	assert.Len(t, s.recycled, 2)
	assert.Equal(t, 3, s.generateID())
	assert.Equal(t, 1, s.generateID())
	assert.Equal(t, 4, s.generateID())
}
