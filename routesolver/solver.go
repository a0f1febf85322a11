package routesolver

import (
	"fmt"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/risk"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// RouteSolver exposes the four route operations of spec.md §4.4 over a
// fixed attributed graph. A RouteSolver does not mutate the graph it wraps;
// multiple solvers (or concurrent solves against distinct solvers sharing
// one graph) are safe per spec.md §5.
type RouteSolver struct {
	graph *tacmap.Graph
	cfg   solverConfig
}

// NewRouteSolver wraps g for solving. g must already be enriched
// (GraphEnricher.EnrichAll applied) — RouteSolver performs no enrichment.
func NewRouteSolver(g *tacmap.Graph, opts ...Option) *RouteSolver {
	cfg := newSolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &RouteSolver{graph: g, cfg: cfg}
}

// ShortestDistance finds the minimum distance_km path from origin to
// destination, per spec.md §4.4.
func (rs *RouteSolver) ShortestDistance(origin, destination int) (RouteResult, error) {
	return rs.solveSimple(origin, destination, MethodShortestDistance,
		func(e tacmap.Edge) float64 { return e.Attrs.DistanceKm })
}

// ShortestTime finds the minimum travel_time_hours path from origin to
// destination, per spec.md §4.4.
func (rs *RouteSolver) ShortestTime(origin, destination int) (RouteResult, error) {
	return rs.solveSimple(origin, destination, MethodShortestTime,
		func(e tacmap.Edge) float64 { return e.Attrs.TravelTimeHours })
}

// MeanRisk assigns each edge weight detection_base * cargo_value/10 *
// killzone_penalty and finds the shortest path under that weight — an
// expected-risk proxy that avoids scenario enumeration, per spec.md §4.4.
func (rs *RouteSolver) MeanRisk(origin, destination int, cargoValue float64) (RouteResult, error) {
	return rs.solveSimple(origin, destination, MethodMeanRisk,
		func(e tacmap.Edge) float64 {
			return e.Attrs.DetectionBase * cargoValue / 10 * e.Attrs.KillzonePenalty
		})
}

// PenalizedShortestTime finds the minimum travel_time_hours path, adding a
// fixed penalty (in hours) to every edge whose (from, to) pair is present in
// usedEdges. Used by strategy.GenerateDiverseRoutes to pad a route portfolio
// with paths distinct from the ones already collected, grounded on
// ghost_supply/decision/game_theory.py's "_generate_k_routes" temp_penalty
// loop: no graph mutation, the penalty lives only in the weight closure.
func (rs *RouteSolver) PenalizedShortestTime(origin, destination int, usedEdges map[[2]int]bool, penaltyHours float64) (RouteResult, error) {
	return rs.solveSimple(origin, destination, MethodShortestTime, func(e tacmap.Edge) float64 {
		w := e.Attrs.TravelTimeHours
		if usedEdges[[2]int{e.From, e.To}] {
			w += penaltyHours
		}

		return w
	})
}

// ScoreRoute recomputes risk statistics (mean_risk, cvar_95, cvar_99,
// survival_probability) for an already-solved route's node path under the
// given scenario set and cargo value, without re-solving the path. Used by
// strategy.GenerateDiverseRoutes and strategy.StackelbergSolver to score
// shortest_distance/shortest_time/mean_risk routes — which solveSimple
// leaves unscored — on the same scenario set cvar_optimize is judged by.
func (rs *RouteSolver) ScoreRoute(result RouteResult, scenarios []scenario.Scenario, cargoValue float64) (RouteResult, error) {
	if result.Empty() {
		return result, nil
	}

	return rs.buildResult(result.NodePath, result.Method, scenarios, cargoValue)
}

func (rs *RouteSolver) solveSimple(origin, destination int, method string, weightFn edgeWeightFn) (RouteResult, error) {
	if !rs.graph.HasNode(origin) {
		return RouteResult{}, fmt.Errorf("routesolver: %s: %w", method, ErrOriginNotFound)
	}
	if !rs.graph.HasNode(destination) {
		return RouteResult{}, fmt.Errorf("routesolver: %s: %w", method, ErrDestinationNotFound)
	}

	dr := runDijkstra(rs.graph, origin, weightFn)
	nodePath := reconstructPath(dr, origin, destination)
	if nodePath == nil {
		return RouteResult{Method: method}, nil // NoPath: spec.md §7
	}

	return rs.buildResult(nodePath, method, nil, 0)
}

// buildResult assembles a RouteResult from a node path, accumulating
// distance/time from edge attributes, stitching per-edge geometry into a
// single coordinate path, and computing risk statistics when scenarios is
// non-empty. Grounded on
// ghost_supply/decision/cvar_routing.py's _build_route_result: geometry is
// appended in full for the first edge and with its leading point dropped
// for subsequent edges (the shared endpoint would otherwise duplicate).
func (rs *RouteSolver) buildResult(nodePath []int, method string, scenarios []scenario.Scenario, cargoValue float64) (RouteResult, error) {
	var (
		path           []geo.Point
		edges          []tacmap.EdgeAttrs
		totalDistance  float64
		totalTimeHours float64
	)

	for i := 0; i < len(nodePath)-1; i++ {
		u, v := nodePath[i], nodePath[i+1]
		e, err := rs.graph.Edge(u, v)
		if err != nil {
			return RouteResult{}, fmt.Errorf("routesolver: buildResult: %w", err)
		}

		segment := segmentPoints(rs.graph, e)
		if i == 0 {
			path = append(path, segment...)
		} else if len(segment) > 0 {
			path = append(path, segment[1:]...)
		}

		totalDistance += e.Attrs.DistanceKm
		totalTimeHours += e.Attrs.TravelTimeHours
		edges = append(edges, e.Attrs)
	}

	result := RouteResult{
		NodePath:    nodePath,
		Path:        path,
		DistanceKm:  totalDistance,
		TimeMinutes: totalTimeHours * 60,
		Method:      method,
		Waypoints:   rs.waypoints(nodePath, totalTimeHours),
	}

	if len(scenarios) > 0 {
		risks := make([]float64, len(scenarios))
		for i, sc := range scenarios {
			risks[i] = risk.PathRisk(edges, sc, cargoValue)
		}
		result.MeanRiskScore = risk.Mean(risks)
		result.CVaR95 = risk.CVaR(risks, 0.95)
		result.CVaR99 = risk.CVaR(risks, 0.99)
		result.Survival = risk.SurvivalProbability(result.CVaR95, risk.DefaultSurvivalLambda)
	}

	return result, nil
}

// segmentPoints returns an edge's coordinate geometry, falling back to its
// two endpoints when no geometry was recorded.
func segmentPoints(g *tacmap.Graph, e tacmap.Edge) []geo.Point {
	if e.Attrs.Geometry != nil {
		return geo.PointsFromGeometry(e.Attrs.Geometry)
	}

	from, errFrom := g.Node(e.From)
	to, errTo := g.Node(e.To)
	if errFrom != nil || errTo != nil {
		return nil
	}

	return []geo.Point{from.Position, to.Position}
}

// waypoints subsamples nodePath at max(1, len/10), always including the
// first and last nodes, per
// ghost_supply/decision/cvar_routing.py's waypoint_interval rule.
func (rs *RouteSolver) waypoints(nodePath []int, totalTimeHours float64) []Waypoint {
	if len(nodePath) == 0 {
		return nil
	}

	interval := len(nodePath) / 10
	if interval < 1 {
		interval = 1
	}

	out := make([]Waypoint, 0)
	count := 0
	for i, id := range nodePath {
		if i != 0 && i != len(nodePath)-1 && i%interval != 0 {
			continue
		}

		n, err := rs.graph.Node(id)
		if err != nil {
			continue
		}

		name := fmt.Sprintf("Waypoint %d", count)
		switch i {
		case 0:
			name = "Origin"
		case len(nodePath) - 1:
			name = "Destination"
		}
		count++

		out = append(out, Waypoint{Position: n.Position, Name: name, ETAHours: totalTimeHours})
	}

	return out
}
