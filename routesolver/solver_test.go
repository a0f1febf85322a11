package routesolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// buildS3Graph constructs spec.md §8's S3 fixture: 0->1->2->3 with edges
// (5km/0.10h), (6km/0.12h), (4km/0.08h) and alternate 0->2 (12km/0.25h).
func buildS3Graph(t *testing.T) *tacmap.Graph {
	t.Helper()
	g := tacmap.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddNode(tacmap.Node{ID: i, Position: geo.Point{Lat: float64(i), Lon: 0}}))
	}

	edges := []struct {
		from, to       int
		distanceKm     float64
		travelHours    float64
	}{
		{0, 1, 5, 0.10},
		{1, 2, 6, 0.12},
		{2, 3, 4, 0.08},
		{0, 2, 12, 0.25},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, tacmap.EdgeAttrs{
			DistanceKm:      e.distanceKm,
			BaseSpeedKmh:    e.distanceKm / e.travelHours,
			TravelTimeHours: e.travelHours,
			KillzonePenalty: 1,
		}))
	}

	return g
}

func TestShortestDistanceAndTimeCoincideOnS3(t *testing.T) {
	g := buildS3Graph(t)
	rs := NewRouteSolver(g)

	distResult, err := rs.ShortestDistance(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, distResult.NodePath)
	assert.InDelta(t, 15.0, distResult.DistanceKm, 1e-9)

	timeResult, err := rs.ShortestTime(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, timeResult.NodePath)
	assert.InDelta(t, 18.0, timeResult.TimeMinutes, 1e-6)
}

func TestShortestDistanceNoPath(t *testing.T) {
	g := tacmap.NewGraph()
	require.NoError(t, g.AddNode(tacmap.Node{ID: 0}))
	require.NoError(t, g.AddNode(tacmap.Node{ID: 1}))

	rs := NewRouteSolver(g)
	result, err := rs.ShortestDistance(0, 1)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Equal(t, MethodShortestDistance, result.Method)
}

func TestShortestDistanceUnknownOrigin(t *testing.T) {
	g := tacmap.NewGraph()
	require.NoError(t, g.AddNode(tacmap.Node{ID: 0}))

	rs := NewRouteSolver(g)
	_, err := rs.ShortestDistance(99, 0)
	require.Error(t, err)
}

func TestMeanRiskPrefersLowerDetection(t *testing.T) {
	g := tacmap.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(tacmap.Node{ID: i}))
	}
	require.NoError(t, g.AddEdge(0, 1, tacmap.EdgeAttrs{DistanceKm: 1, BaseSpeedKmh: 10, TravelTimeHours: 0.1, DetectionBase: 0.9, KillzonePenalty: 1}))
	require.NoError(t, g.AddEdge(1, 2, tacmap.EdgeAttrs{DistanceKm: 1, BaseSpeedKmh: 10, TravelTimeHours: 0.1, DetectionBase: 0.9, KillzonePenalty: 1}))
	require.NoError(t, g.AddEdge(0, 2, tacmap.EdgeAttrs{DistanceKm: 3, BaseSpeedKmh: 10, TravelTimeHours: 0.3, DetectionBase: 0.05, KillzonePenalty: 1}))

	rs := NewRouteSolver(g)
	result, err := rs.MeanRisk(0, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, result.NodePath)
}

// TestCVaROptimizeAvoidsForbiddenEdge is spec.md §8's S4: given a forbidden edge midpoint
// inside a kill zone, mean_risk/cvar_optimize must exclude it (or incur a
// >=10x CVaR penalty relative to the killzone-free alternative).
func TestCVaROptimizeAvoidsForbiddenEdge(t *testing.T) {
	g := tacmap.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(tacmap.Node{ID: i}))
	}
	require.NoError(t, g.AddEdge(0, 1, tacmap.EdgeAttrs{DistanceKm: 1, BaseSpeedKmh: 10, TravelTimeHours: 0.05, DetectionBase: 0.1, KillzonePenalty: 1000}))
	require.NoError(t, g.AddEdge(0, 2, tacmap.EdgeAttrs{DistanceKm: 4, BaseSpeedKmh: 10, TravelTimeHours: 0.4, DetectionBase: 0.1, KillzonePenalty: 1}))
	require.NoError(t, g.AddEdge(1, 2, tacmap.EdgeAttrs{DistanceKm: 1, BaseSpeedKmh: 10, TravelTimeHours: 0.05, DetectionBase: 0.1, KillzonePenalty: 1000}))

	rs := NewRouteSolver(g)
	scenarios := scenario.NewScenarioSampler(1).Sample(20)

	result, err := rs.CVaROptimize(0, 2, 5, scenarios)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, result.NodePath)
	assert.Equal(t, MethodCVaROptimize, result.Method)
}

func TestCVaROptimizeFallsBackWhenNoPath(t *testing.T) {
	g := tacmap.NewGraph()
	require.NoError(t, g.AddNode(tacmap.Node{ID: 0}))
	require.NoError(t, g.AddNode(tacmap.Node{ID: 1}))

	rs := NewRouteSolver(g)
	result, err := rs.CVaROptimize(0, 1, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, MethodCVaRFallbackTime, result.Method)
	assert.True(t, result.Empty())
}

func TestWaypointsIncludeOriginAndDestination(t *testing.T) {
	g := buildS3Graph(t)
	rs := NewRouteSolver(g)

	result, err := rs.ShortestDistance(0, 3)
	require.NoError(t, err)
	require.NotEmpty(t, result.Waypoints)
	assert.Equal(t, "Origin", result.Waypoints[0].Name)
	assert.Equal(t, "Destination", result.Waypoints[len(result.Waypoints)-1].Name)
}

// TestPathReconstructionConnectivity is spec.md §8 universal property 6:
// consecutive nodes in a non-empty RouteResult are connected by an edge in
// the graph; the first equals origin, the last equals destination.
func TestPathReconstructionConnectivity(t *testing.T) {
	g := buildS3Graph(t)
	rs := NewRouteSolver(g)

	result, err := rs.ShortestTime(0, 3)
	require.NoError(t, err)
	require.False(t, result.Empty())
	assert.Equal(t, 0, result.NodePath[0])
	assert.Equal(t, 3, result.NodePath[len(result.NodePath)-1])

	for i := 0; i < len(result.NodePath)-1; i++ {
		assert.True(t, g.HasEdge(result.NodePath[i], result.NodePath[i+1]))
	}
}
