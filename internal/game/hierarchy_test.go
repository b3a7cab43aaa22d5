package game

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, ids ...BodyID) *Hierarchy {
	t.Helper()
	h := NewHierarchy()
	for _, id := range ids {
		require.NoError(t, h.Add(id))
	}
	return h
}

func TestHierarchy_OrderParentsFirst(t *testing.T) {
	h := newTree(t, 1, 2, 3, 4, 5)
	require.NoError(t, h.SetParent(3, 5)) // 5 -> 3
	require.NoError(t, h.SetParent(2, 3)) // 5 -> 3 -> 2
	require.NoError(t, h.SetParent(4, 1)) // 1 -> 4

	order, err := h.Order()
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[BodyID]int)
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos[5], pos[3])
	assert.Less(t, pos[3], pos[2])
	assert.Less(t, pos[1], pos[4])
	assert.Equal(t, BodyID(1), order[0], "lowest root first")
}

func TestHierarchy_RefusesCycles(t *testing.T) {
	h := newTree(t, 1, 2, 3)
	require.NoError(t, h.SetParent(2, 1))
	require.NoError(t, h.SetParent(3, 2))

	err := h.SetParent(1, 3)
	require.ErrorIs(t, err, graph.ErrEdgeCreatesCycle)
	_, hasParent := h.Parent(1)
	assert.False(t, hasParent)

	err = h.SetParent(2, 2)
	require.ErrorIs(t, err, graph.ErrEdgeCreatesCycle)
	p, _ := h.Parent(2)
	assert.Equal(t, BodyID(1), p, "failed move keeps the old parent")
}

func TestHierarchy_FailedReparentRestoresEdge(t *testing.T) {
	h := newTree(t, 1, 2, 3)
	require.NoError(t, h.SetParent(2, 1))
	require.NoError(t, h.SetParent(3, 2))

	// 2 under 3 would close 2 -> 3 -> 2
	err := h.SetParent(2, 3)
	require.ErrorIs(t, err, graph.ErrEdgeCreatesCycle)
	assert.NotContains(t, err.Error(), "restore")
	p, ok := h.Parent(2)
	require.True(t, ok)
	assert.Equal(t, BodyID(1), p)
	assert.Equal(t, []BodyID{2}, h.Children(1))

	_, err = h.g.Edge(1, 2)
	require.NoError(t, err, "graph edge restored")
	order, err := h.Order()
	require.NoError(t, err)
	assert.Equal(t, []BodyID{1, 2, 3}, order)
}

func TestHierarchy_DetachAndChildren(t *testing.T) {
	h := newTree(t, 1, 2, 3)
	require.NoError(t, h.SetParent(3, 1))
	require.NoError(t, h.SetParent(2, 1))
	assert.Equal(t, []BodyID{2, 3}, h.Children(1))
	assert.Equal(t, 1, h.Depth(3))

	require.NoError(t, h.Detach(3))
	require.NoError(t, h.Detach(3), "detaching a root is a no-op")
	assert.Equal(t, []BodyID{2}, h.Children(1))
	assert.Equal(t, 0, h.Depth(3))
}

func TestHierarchy_OrderCacheInvalidated(t *testing.T) {
	h := newTree(t, 1, 2)
	order, err := h.Order()
	require.NoError(t, err)
	assert.Equal(t, []BodyID{1, 2}, order)

	require.NoError(t, h.SetParent(1, 2))
	order, err = h.Order()
	require.NoError(t, err)
	assert.Equal(t, []BodyID{2, 1}, order)
}
