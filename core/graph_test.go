package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
)

func TestNewGraph_BadOrder(t *testing.T) {
	_, err := core.NewGraph(0)
	require.ErrorIs(t, err, core.ErrBadOrder)

	_, err = core.NewGraph(-3)
	require.ErrorIs(t, err, core.ErrBadOrder)
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	// Endpoints outside [1, n].
	require.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrNodeRange)
	require.ErrorIs(t, g.AddEdge(1, 4, 1), core.ErrNodeRange)

	// Weight domain.
	require.ErrorIs(t, g.AddEdge(1, 2, -1), core.ErrNegativeWeight)
	require.ErrorIs(t, g.AddEdge(1, 2, core.MaxWeight+1), core.ErrWeightRange)

	// Nothing was recorded by the failed calls.
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Neighbors(1))
}

func TestAddEdge_ParallelAndLoopsRetained(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(1, 2, 3)) // parallel, lighter
	require.NoError(t, g.AddEdge(3, 3, 7)) // self-loop
	require.NoError(t, g.AddEdge(2, 3, 0)) // zero weight is legal

	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []core.Arc{{To: 2, Weight: 5}, {To: 2, Weight: 3}}, g.Neighbors(1))
	assert.Equal(t, []core.Arc{{To: 1, Weight: 5}, {To: 1, Weight: 3}, {To: 3, Weight: 0}}, g.Neighbors(2))
	assert.Equal(t, 3, g.Degree(3)) // loop contributes two arcs, plus 2—3

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 5}, edges[0])
	assert.Equal(t, core.Edge{From: 2, To: 3, Weight: 0}, edges[3])

	// Edges returns a copy.
	edges[0].Weight = 99
	assert.Equal(t, int64(5), g.Edges()[0].Weight)
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{1, 2, 1}, {2, 3, 2}, {3, 4, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())

	_, err = core.FromEdges(2, []core.Edge{{1, 3, 1}})
	require.ErrorIs(t, err, core.ErrNodeRange)
}

func TestComponents(t *testing.T) {
	// 1—2—3   4—5   6
	g, err := core.FromEdges(6, []core.Edge{{1, 2, 1}, {2, 3, 1}, {5, 4, 2}})
	require.NoError(t, err)

	label := g.Components()
	assert.Equal(t, []int{-1, 0, 0, 0, 1, 1, 2}, label)

	assert.True(t, g.Connected(1, 3))
	assert.False(t, g.Connected(1, 4))
	assert.True(t, g.Connected(6))
	assert.True(t, g.Connected())
}

func TestWithEdgeCapacity_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithEdgeCapacity(-1) })
}
