package routesolver

import (
	"errors"

	"github.com/katalvlaran/ghostroute/geo"
)

// Sentinel errors for routesolver operations.
var (
	// ErrOriginNotFound indicates the origin node does not exist in the graph.
	ErrOriginNotFound = errors.New("routesolver: origin node not found")

	// ErrDestinationNotFound indicates the destination node does not exist.
	ErrDestinationNotFound = errors.New("routesolver: destination node not found")
)

// Method names RouteResult carries, including fallback tags (spec.md §7).
const (
	MethodShortestDistance = "shortest_distance"
	MethodShortestTime     = "shortest_time"
	MethodMeanRisk         = "mean_risk"
	MethodCVaROptimize     = "cvar_optimize"

	// MethodCVaRFallbackTime is the method tag a degraded CVaR result
	// carries when it falls back to shortest_time (spec.md §7:
	// "SolverUnavailable/SolverTimeout/SolverInfeasible... falls back
	// silently to shortest_time; the result carries the fallback method
	// name so callers can see the degradation").
	MethodCVaRFallbackTime = "cvar_optimize->shortest_time"
)

// Waypoint is one labeled stop along a route, per spec.md's RouteResult
// shape (subsampled from the full node path at a fixed interval).
type Waypoint struct {
	Position     geo.Point
	Name         string
	ETAHours     float64
	Instructions string
}

// RouteResult is the solver's uniform output type. A NoPath result (spec.md
// §7) is an empty RouteResult with Method preserved and every numeric
// field zero: len(NodePath) == 0.
type RouteResult struct {
	NodePath      []int
	Path          []geo.Point
	DistanceKm    float64
	TimeMinutes   float64
	MeanRiskScore float64
	CVaR95        float64
	CVaR99        float64
	Survival      float64
	Waypoints     []Waypoint
	Method        string
}

// Empty reports whether the result represents NoPath.
func (r RouteResult) Empty() bool {
	return len(r.NodePath) == 0
}
