package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/mst"
)

// buildTriangle constructs a triangle plus a pendant node:
//
//	1—2 (1), 2—3 (2), 1—3 (3), 3—4 (4)
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{{1, 2, 1}, {2, 3, 2}, {1, 3, 3}, {3, 4, 4}})
	require.NoError(t, err)

	return g
}

func TestKruskal_Whole(t *testing.T) {
	edges, total, err := mst.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, []core.Edge{{1, 2, 1}, {2, 3, 2}, {3, 4, 4}}, edges)
}

func TestKruskal_InducedSubset(t *testing.T) {
	g := buildTriangle(t)

	// {1,3}: only the direct edge 1—3 is induced.
	_, total, err := mst.Kruskal(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// {1,4}: no induced edge between them.
	_, _, err = mst.Kruskal(g, 1, 4)
	require.ErrorIs(t, err, mst.ErrDisconnected)

	// Single node spans trivially.
	edges, total, err := mst.Kruskal(g, 2)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestKruskal_Validation(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	require.ErrorIs(t, err, mst.ErrNilGraph)

	_, _, err = mst.Kruskal(buildTriangle(t), 9)
	require.ErrorIs(t, err, core.ErrNodeRange)
}

func TestSpanner_ReuseAndValidation(t *testing.T) {
	g := buildTriangle(t)
	s, err := mst.NewSpanner(g)
	require.NoError(t, err)

	_, err = s.Weight(make([]bool, 3))
	require.ErrorIs(t, err, mst.ErrSubsetLength)

	_, err = s.Weight(make([]bool, 5))
	require.ErrorIs(t, err, mst.ErrEmptySubset)

	// Repeated queries must not leak union-find state.
	w, err := s.Weight([]bool{false, true, true, true, false})
	require.NoError(t, err)
	assert.Equal(t, int64(3), w)

	w, err = s.Weight([]bool{false, true, false, true, true})
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
}

func TestSortedEdges_DropsLoopsStable(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{1, 2, 5}, {2, 2, 0}, {2, 3, 1}, {1, 3, 5}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{2, 3, 1}, {1, 2, 5}, {1, 3, 5}}, mst.SortedEdges(g))
}
