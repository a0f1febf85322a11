package strategy

import (
	"errors"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/routesolver"
)

// Sentinel errors for strategy operations.
var (
	// ErrEmptyParetoFront indicates ParetoFront was asked to filter zero
	// weight samples, or every sample failed to solve (spec.md §7:
	// "Pareto with empty input raises EmptyParetoFront to the caller").
	ErrEmptyParetoFront = errors.New("strategy: empty pareto front")

	// ErrNoRoutes indicates StackelbergSolver has no candidate route to
	// build a portfolio from (the origin/destination pair is disconnected).
	ErrNoRoutes = errors.New("strategy: no candidate routes available")
)

// patrolRadiusKm is the fixed detection radius around a patrol point used
// by the interception-probability model (spec.md §4.5.2).
const patrolRadiusKm = 3.0

// WeightPair is one (weight_time, weight_risk) sample on the simplex that
// ParetoFront feeds to cvar_optimize (spec.md §4.5.1).
type WeightPair struct {
	WeightTime float64
	WeightRisk float64
}

// ParetoPoint is one solved sample: the weights that produced it and the
// resulting route.
type ParetoPoint struct {
	Weights WeightPair
	Route   routesolver.RouteResult
}

// ParetoFrontResult is the non-dominated subset of a weight sweep in the
// (time_minutes, cvar_95) plane.
type ParetoFrontResult struct {
	Points []ParetoPoint
}

// Dominates reports whether a dominates b in the (time, risk) plane per
// spec.md §4.5.1: "a dominates b iff a <= b componentwise and strictly less
// in one".
func Dominates(a, b routesolver.RouteResult) bool {
	if a.TimeMinutes > b.TimeMinutes || a.CVaR95 > b.CVaR95 {
		return false
	}

	return a.TimeMinutes < b.TimeMinutes || a.CVaR95 < b.CVaR95
}

// PatrolPoint is one fixed observer position a DefenderConfig places along
// (or near) a candidate route.
type PatrolPoint struct {
	Position geo.Point
}

// DefenderConfig is one of the M candidate patrol layouts StackelbergSolver
// evaluates against every candidate route (spec.md §4.5.2).
type DefenderConfig struct {
	Patrols       []PatrolPoint
	Effectiveness float64 // in [0.7, 1.0]
}

// EquilibriumKind discriminates how a StackelbergResult's mixed strategy was
// produced, replacing the exception-driven control flow of the original
// prototype's equilibrium search (spec.md §9).
type EquilibriumKind int

const (
	// EquilibriumUnique is a genuine support-enumeration solution: the
	// attacker's mixed strategy makes the defender indifferent across a
	// verified support, and no player has a profitable deviation.
	EquilibriumUnique EquilibriumKind = iota
	// EquilibriumDegenerate is the forced K=1 case: a single route, played
	// with probability 1.
	EquilibriumDegenerate
	// EquilibriumUniformFallback marks a payoff matrix with no informative
	// structure (every entry equal) or for which support enumeration found
	// no valid equilibrium; the uniform distribution is returned as the
	// safe default (spec.md §4.5.2).
	EquilibriumUniformFallback
)

// StackelbergResult is StackelbergSolver's full output: the route
// portfolio, the sampled defender configurations, the payoff matrix built
// from them, and the resulting mixed strategy over routes.
type StackelbergResult struct {
	Routes    []routesolver.RouteResult
	Defenders []DefenderConfig
	Payoff    [][]float64 // K x M, attacker's perspective, values <= 0
	Strategy  []float64   // length K, sums to 1
	Kind      EquilibriumKind
}
