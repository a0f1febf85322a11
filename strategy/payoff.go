package strategy

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/routesolver"
)

// SampleDefenderConfigs draws m defender patrol layouts, each 2-5 patrol
// points picked uniformly from the sampled positions along routes plus an
// effectiveness in [0.7, 1.0], per spec.md §4.5.2. rng must be
// deterministic (caller-seeded) so the sampled configurations — and hence
// the resulting equilibrium — are reproducible.
func SampleDefenderConfigs(routes []routesolver.RouteResult, m int, rng *rand.Rand) []DefenderConfig {
	var positions []geo.Point
	for _, r := range routes {
		positions = append(positions, r.Path...)
	}
	if len(positions) == 0 {
		return nil
	}

	configs := make([]DefenderConfig, m)
	for i := 0; i < m; i++ {
		n := 2 + rng.Intn(4) // 2..5 inclusive
		patrols := make([]PatrolPoint, n)
		for j := 0; j < n; j++ {
			patrols[j] = PatrolPoint{Position: positions[rng.Intn(len(positions))]}
		}

		configs[i] = DefenderConfig{
			Patrols:       patrols,
			Effectiveness: 0.7 + rng.Float64()*0.3,
		}
	}

	return configs
}

// BuildPayoffMatrix computes the attacker's K x M zero-sum payoff matrix,
// per spec.md §4.5.2:
//
//	payoff[i,j] = -interception_prob(route_i, config_j)
//	interception_prob = min(1, route.mean_risk + 0.3 * sum_patrol exposure)
//	exposure = effectiveness * (1 - min_distance_to_route/patrol_radius_km)
//	           if min_distance_to_route <= patrol_radius_km else 0
func BuildPayoffMatrix(routes []routesolver.RouteResult, defenders []DefenderConfig) [][]float64 {
	payoff := make([][]float64, len(routes))
	for i, route := range routes {
		payoff[i] = make([]float64, len(defenders))
		for j, cfg := range defenders {
			payoff[i][j] = -interceptionProbability(route, cfg)
		}
	}

	return payoff
}

func interceptionProbability(route routesolver.RouteResult, cfg DefenderConfig) float64 {
	exposure := 0.0
	for _, p := range cfg.Patrols {
		d := minDistanceToPath(route.Path, p.Position)
		if d <= patrolRadiusKm {
			exposure += cfg.Effectiveness * (1 - d/patrolRadiusKm)
		}
	}

	p := route.MeanRiskScore + 0.3*exposure

	return math.Min(1, math.Max(0, p))
}

// minDistanceToPath returns the minimum haversine distance from point to
// any vertex of path. path is routesolver's buildResult output: the edge
// geometry points where recorded, otherwise only the edge endpoints. The
// distance is measured to those vertices, not to the segments between them.
func minDistanceToPath(path []geo.Point, point geo.Point) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}

	best := geo.HaversinePoints(path[0], point)
	for _, p := range path[1:] {
		if d := geo.HaversinePoints(p, point); d < best {
			best = d
		}
	}

	return best
}
