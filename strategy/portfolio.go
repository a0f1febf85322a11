package strategy

import (
	"github.com/katalvlaran/ghostroute/routesolver"
	"github.com/katalvlaran/ghostroute/scenario"
)

// GenerateDiverseRoutes builds a route portfolio of size k per spec.md
// §4.5.2: start with the four solver outputs (cvar, fastest, shortest,
// mean_risk), deduplicated by node path, then pad to k by repeatedly
// penalizing every edge already used by any collected route and solving a
// penalized shortest-time path, stopping as soon as no new distinct path
// is produced. Every returned route carries risk statistics scored against
// scenarios (routesolver.ScoreRoute), so the portfolio is comparable on
// mean_risk/cvar_95 regardless of which method produced it.
//
// Grounded on ghost_supply/decision/game_theory.py's _generate_k_routes
// temp_penalty loop (spec.md §4.5.2 module map); no graph mutation occurs —
// the penalty lives only in routesolver.PenalizedShortestTime's weight
// closure, restored on every call per spec.md §9's scoped-penalty design.
func GenerateDiverseRoutes(rs *routesolver.RouteSolver, origin, destination int, cargoValue float64, scenarios []scenario.Scenario, k int, penaltyHours float64) ([]routesolver.RouteResult, error) {
	seeds := []struct {
		method string
		solve  func() (routesolver.RouteResult, error)
	}{
		{routesolver.MethodCVaROptimize, func() (routesolver.RouteResult, error) {
			return rs.CVaROptimize(origin, destination, cargoValue, scenarios)
		}},
		{routesolver.MethodShortestTime, func() (routesolver.RouteResult, error) {
			return rs.ShortestTime(origin, destination)
		}},
		{routesolver.MethodShortestDistance, func() (routesolver.RouteResult, error) {
			return rs.ShortestDistance(origin, destination)
		}},
		{routesolver.MethodMeanRisk, func() (routesolver.RouteResult, error) {
			return rs.MeanRisk(origin, destination, cargoValue)
		}},
	}

	var routes []routesolver.RouteResult
	seen := make(map[string]bool)

	addIfNew := func(r routesolver.RouteResult) error {
		if r.Empty() {
			return nil
		}
		key := pathKey(r.NodePath)
		if seen[key] {
			return nil
		}

		scored, err := rs.ScoreRoute(r, scenarios, cargoValue)
		if err != nil {
			return err
		}

		seen[key] = true
		routes = append(routes, scored)

		return nil
	}

	for _, s := range seeds {
		r, err := s.solve()
		if err != nil {
			return nil, err
		}
		if err := addIfNew(r); err != nil {
			return nil, err
		}
	}

	for len(routes) < k {
		usedEdges := usedEdgeSet(routes)

		padded, err := rs.PenalizedShortestTime(origin, destination, usedEdges, penaltyHours)
		if err != nil {
			return nil, err
		}
		if padded.Empty() {
			break
		}

		before := len(routes)
		if err := addIfNew(padded); err != nil {
			return nil, err
		}
		if len(routes) == before {
			break // no new distinct path produced
		}
	}

	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	return routes, nil
}

// pathKey turns a node path into a comparable map key for deduplication.
func pathKey(path []int) string {
	b := make([]byte, 0, len(path)*4)
	for _, id := range path {
		b = append(b, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}

	return string(b)
}

// usedEdgeSet collects every directed edge used by any route in routes.
func usedEdgeSet(routes []routesolver.RouteResult) map[[2]int]bool {
	used := make(map[[2]int]bool)
	for _, r := range routes {
		for i := 0; i < len(r.NodePath)-1; i++ {
			used[[2]int{r.NodePath[i], r.NodePath[i+1]}] = true
		}
	}

	return used
}
