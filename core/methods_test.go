package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgrowth/core"
)

func TestGraph_NodeLifecycle(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, int64(0), g.NextID(), "empty graph starts at id 0")
	require.Zero(t, g.NodeCount())

	require.NoError(t, g.AddNode(0, core.KindUntagged))
	require.NoError(t, g.AddNode(5, core.KindBarabasi))
	require.NoError(t, g.AddNode(2, core.KindRandom))

	require.ErrorIs(t, g.AddNode(5, core.KindRandom), core.ErrDuplicateNode)
	assert.Equal(t, []int64{0, 5, 2}, g.Nodes(), "creation order is kept")
	assert.Equal(t, int64(6), g.NextID(), "NextID is max+1, not count")
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(3))

	k, err := g.Kind(5)
	require.NoError(t, err)
	assert.Equal(t, core.KindBarabasi, k)
	assert.Equal(t, "barabasi", k.String())

	_, err = g.Kind(42)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	counts := g.KindCounts()
	assert.Equal(t, 1, counts[core.KindUntagged])
	assert.Equal(t, 1, counts[core.KindBarabasi])
	assert.Equal(t, 1, counts[core.KindRandom])
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewEmptyGraph(3)

	require.ErrorIs(t, g.AddEdge(1, 1), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 9), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(9, 0), core.ErrNodeNotFound)

	added, err := g.AddEdgeReport(0, 1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddEdgeReport(1, 0)
	require.NoError(t, err)
	assert.False(t, added, "reverse pair is the same undirected edge")
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.AddEdge(2, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(7, 0))

	assert.Equal(t, []core.Pair{{U: 0, V: 1}, {U: 1, V: 2}}, g.Edges())
}

func TestGraph_DegreeQueries(t *testing.T) {
	// star 0-{1,2,3} plus 1-2
	g := core.NewEmptyGraph(5)
	for _, p := range [][2]int64{{0, 1}, {0, 2}, {0, 3}, {1, 2}} {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Degree(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	ids, degrees := g.DegreeSnapshot()
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, ids)
	assert.Equal(t, []int{3, 2, 2, 1, 0}, degrees)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, nb)

	// neighbors of 0 have degrees 2,2,1
	avg, err := g.NeighborAverageDegree(0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, avg, 1e-12)

	avg, err = g.NeighborAverageDegree(3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-12)

	avg, err = g.NeighborAverageDegree(4)
	require.NoError(t, err)
	assert.Zero(t, avg, "isolated node averages to zero")
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewEmptyGraph(3)
	require.NoError(t, g.AddEdge(0, 2))

	c := g.Clone()
	require.NoError(t, c.AddNode(c.NextID(), core.KindRandom))
	require.NoError(t, c.AddEdge(3, 0))

	assert.Equal(t, 3, g.NodeCount(), "source untouched")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 4, c.NodeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, g.NextID()+1, c.NextID())
}
