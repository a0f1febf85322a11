package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// buildDiamondGraph builds a small graph with two origin-to-destination
// routes of different time/risk profiles: 0->1->3 is fast but risky,
// 0->2->3 is slow but safe. Shared beside package tests per the teacher's
// convention of per-package test fixtures (routesolver/solver_test.go).
func buildDiamondGraph(t *testing.T) *tacmap.Graph {
	t.Helper()
	g := tacmap.NewGraph()
	positions := []geo.Point{{Lat: 0, Lon: 0}, {Lat: 0.05, Lon: 0.05}, {Lat: -0.05, Lon: 0.05}, {Lat: 0, Lon: 0.1}}
	for i, p := range positions {
		require.NoError(t, g.AddNode(tacmap.Node{ID: i, Position: p}))
	}

	edges := []struct {
		from, to                  int
		distanceKm, speedKmh      float64
		detection, killzonePenal float64
	}{
		{0, 1, 5, 50, 0.8, 1},
		{1, 3, 5, 50, 0.8, 1},
		{0, 2, 8, 20, 0.05, 1},
		{2, 3, 8, 20, 0.05, 1},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, tacmap.EdgeAttrs{
			DistanceKm:      e.distanceKm,
			BaseSpeedKmh:    e.speedKmh,
			TravelTimeHours: e.distanceKm / e.speedKmh,
			DetectionBase:   e.detection,
			KillzonePenalty: e.killzonePenal,
			Visibility:      0.3,
		}))
	}

	return g
}
