package tacmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/geo"
)

func sampleAttrs() EdgeAttrs {
	return EdgeAttrs{
		DistanceKm:      5,
		RoadType:        RoadSecondary,
		BaseSpeedKmh:    40,
		TravelTimeHours: 5.0 / 40.0,
		Visibility:      0.5,
		DetectionBase:   0.1,
		KillzonePenalty: 1,
	}
}

func TestAddNodeDuplicate(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1, Position: geo.Point{Lat: 50, Lon: 30}}))

	err := g.AddNode(Node{ID: 1, Position: geo.Point{Lat: 51, Lon: 31}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateNode))
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))

	err := g.AddEdge(1, 2, sampleAttrs())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))

	err := g.AddEdge(1, 1, sampleAttrs())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfLoop))
}

func TestAddEdgeRejectsInvalidDistance(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))
	require.NoError(t, g.AddNode(Node{ID: 2}))

	attrs := sampleAttrs()
	attrs.DistanceKm = 0
	err := g.AddEdge(1, 2, attrs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDistance))
}

func TestAddEdgeRejectsInvalidSpeed(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))
	require.NoError(t, g.AddNode(Node{ID: 2}))

	attrs := sampleAttrs()
	attrs.BaseSpeedKmh = 0
	err := g.AddEdge(1, 2, attrs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpeed))
}

func TestAddEdgeReplacesExisting(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))
	require.NoError(t, g.AddNode(Node{ID: 2}))
	require.NoError(t, g.AddEdge(1, 2, sampleAttrs()))

	replacement := sampleAttrs()
	replacement.DistanceKm = 9
	require.NoError(t, g.AddEdge(1, 2, replacement))

	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, e.Attrs.DistanceKm)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestSetEdgeAttrsRequiresExisting(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))
	require.NoError(t, g.AddNode(Node{ID: 2}))

	err := g.SetEdgeAttrs(1, 2, sampleAttrs())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEdgeNotFound))

	require.NoError(t, g.AddEdge(1, 2, sampleAttrs()))
	updated := sampleAttrs()
	updated.KillzonePenalty = 5
	require.NoError(t, g.SetEdgeAttrs(1, 2, updated))

	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Attrs.KillzonePenalty)
}

func TestOutEdgesAndInEdgesOrdered(t *testing.T) {
	g := NewGraph()
	for _, id := range []int{1, 2, 3, 4} {
		require.NoError(t, g.AddNode(Node{ID: id}))
	}
	require.NoError(t, g.AddEdge(1, 3, sampleAttrs()))
	require.NoError(t, g.AddEdge(1, 2, sampleAttrs()))
	require.NoError(t, g.AddEdge(4, 2, sampleAttrs()))

	out := g.OutEdges(1)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].To)
	assert.Equal(t, 3, out[1].To)

	in := g.InEdges(2)
	require.Len(t, in, 2)
	assert.Equal(t, 1, in[0].From)
	assert.Equal(t, 4, in[1].From)
}

func TestNodeIDsSorted(t *testing.T) {
	g := NewGraph()
	for _, id := range []int{5, 1, 3} {
		require.NoError(t, g.AddNode(Node{ID: id}))
	}
	assert.Equal(t, []int{1, 3, 5}, g.NodeIDs())
	assert.Equal(t, 5, g.MaxNodeID())
}

func TestMaxNodeIDEmptyGraph(t *testing.T) {
	g := NewGraph()
	assert.Equal(t, -1, g.MaxNodeID())
}

func TestEdgesOrderedAndCount(t *testing.T) {
	g := NewGraph()
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, g.AddNode(Node{ID: id}))
	}
	require.NoError(t, g.AddEdge(2, 3, sampleAttrs()))
	require.NoError(t, g.AddEdge(1, 2, sampleAttrs()))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, 1, edges[0].From)
	assert.Equal(t, 2, edges[1].From)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{ID: 1}))
	require.NoError(t, g.AddNode(Node{ID: 2}))
	require.NoError(t, g.AddEdge(1, 2, sampleAttrs()))

	clone := g.Clone()
	updated := sampleAttrs()
	updated.KillzonePenalty = 1000
	require.NoError(t, clone.SetEdgeAttrs(1, 2, updated))

	original, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.False(t, original.Attrs.Forbidden())

	clonedEdge, err := clone.Edge(1, 2)
	require.NoError(t, err)
	assert.True(t, clonedEdge.Attrs.Forbidden())
}

func TestForbiddenThreshold(t *testing.T) {
	attrs := sampleAttrs()
	attrs.KillzonePenalty = 999
	assert.False(t, attrs.Forbidden())

	attrs.KillzonePenalty = 1000
	assert.True(t, attrs.Forbidden())
}
