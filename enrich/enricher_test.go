package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/tacmap"
)

func simpleRawGraph() RawGraph {
	return RawGraph{
		Nodes: []RawNode{
			{ID: 0, Lat: 50.00, Lon: 30.00},
			{ID: 1, Lat: 50.01, Lon: 30.00},
		},
		Edges: []RawEdge{
			{From: 0, To: 1, Highway: "primary", LengthM: 1200},
			{From: 0, To: 1, Highway: "primary", LengthM: 1100}, // shorter, no geometry, wins
			{From: 1, To: 0, Highway: "track", LengthM: 1150},
		},
	}
}

func TestSimplifyPicksShortestWhenNoGeometry(t *testing.T) {
	ge := NewGraphEnricher()
	g, err := ge.Simplify(simpleRawGraph())
	require.NoError(t, err)

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, e.Attrs.DistanceKm, 1e-9)
	assert.Equal(t, tacmap.RoadPrimary, e.Attrs.RoadType)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestSimplifyPrefersGeometry(t *testing.T) {
	raw := simpleRawGraph()
	raw.Edges = []RawEdge{
		{From: 0, To: 1, Highway: "primary", LengthM: 900},
		{From: 0, To: 1, Highway: "secondary", LengthM: 1500, Geometry: []geo.Point{
			{Lat: 50.00, Lon: 30.00}, {Lat: 50.01, Lon: 30.00},
		}},
	}

	ge := NewGraphEnricher()
	g, err := ge.Simplify(raw)
	require.NoError(t, err)

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, tacmap.RoadSecondary, e.Attrs.RoadType)
	require.NotNil(t, e.Attrs.Geometry)
}

func TestSimplifyRejectsEmptyGraph(t *testing.T) {
	ge := NewGraphEnricher()
	_, err := ge.Simplify(RawGraph{})
	require.Error(t, err)
}

func TestAttachSyntheticConnectsNearestNode(t *testing.T) {
	ge := NewGraphEnricher()
	g, err := ge.Simplify(simpleRawGraph())
	require.NoError(t, err)

	depotID, err := ge.AttachSynthetic(g, tacmap.RoleDepot, geo.Point{Lat: 49.999, Lon: 30.00})
	require.NoError(t, err)
	assert.Equal(t, 2, depotID)

	node, err := g.Node(depotID)
	require.NoError(t, err)
	assert.Equal(t, tacmap.RoleDepot, node.Role)

	out, err := g.Edge(depotID, 0)
	require.NoError(t, err)
	assert.Equal(t, depotSpeedKmh, out.Attrs.BaseSpeedKmh)

	back, err := g.Edge(0, depotID)
	require.NoError(t, err)
	assert.Equal(t, depotDetectionBase, back.Attrs.DetectionBase)
}

func TestAttachSyntheticEmptyGraph(t *testing.T) {
	ge := NewGraphEnricher()
	g := tacmap.NewGraph()

	_, err := ge.AttachSynthetic(g, tacmap.RoleDepot, geo.Point{Lat: 50, Lon: 30})
	require.Error(t, err)
}

type constantThreat struct{ v float64 }

func (c constantThreat) RiskAt(_, _ float64, _ int64, _ tacmap.RoadType, _ WeatherCondition) float64 {
	return c.v
}

func TestEnrichAllRecomputesAttributes(t *testing.T) {
	ge := NewGraphEnricher(
		WithThreatPredictor(constantThreat{v: 0.3}),
		WithViewshed(func(_, _ float64) float64 { return 0.8 }),
		WithKillZones([]tacmap.KillZone{{ID: "z1", Center: geo.Point{Lat: 50.005, Lon: 30.0}, RadiusKm: 0.2}}),
	)
	g, err := ge.Simplify(simpleRawGraph())
	require.NoError(t, err)

	require.NoError(t, ge.EnrichAll(g, WeatherClear, 10))

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.3, e.Attrs.DetectionBase)
	assert.Equal(t, 0.8, e.Attrs.Visibility)
	assert.Greater(t, e.Attrs.KillzonePenalty, 1.0)
}

func TestKillzonePenaltyBands(t *testing.T) {
	ge := NewGraphEnricher(WithKillZones([]tacmap.KillZone{
		{ID: "z", Center: geo.Point{Lat: 50.0, Lon: 30.0}, RadiusKm: 1.0},
	}))

	inside := ge.killzonePenalty(geo.Point{Lat: 50.0, Lon: 30.0})
	assert.Equal(t, 1000.0, inside)

	far := ge.killzonePenalty(geo.Point{Lat: 51.0, Lon: 40.0})
	assert.Equal(t, 1.0, far)
}

func TestFallbackGridDimensionsAndRoadTypes(t *testing.T) {
	ge := NewGraphEnricher()
	g, err := ge.FallbackGrid(BoundingBox{North: 50.1, South: 50.0, East: 30.1, West: 30.0})
	require.NoError(t, err)

	assert.Equal(t, defaultGridDim*defaultGridDim, g.NodeCount())

	centralRow, centralCol := defaultGridDim/2, defaultGridDim/2
	e, err := g.Edge(centralRow*defaultGridDim, centralRow*defaultGridDim+1)
	require.NoError(t, err)
	assert.Equal(t, tacmap.RoadPrimary, e.Attrs.RoadType)
	_ = centralCol
}

func TestFallbackGridAcceptsMinimumDimensions(t *testing.T) {
	ge := NewGraphEnricher(WithGridFallbackSize(2, 2))
	g, err := ge.FallbackGrid(BoundingBox{North: 1, South: 0, East: 1, West: 0})
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
}
