package strategy

import (
	"github.com/katalvlaran/ghostroute/routesolver"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// ParetoFront sweeps the (time, risk) weight simplex, calling cvar_optimize
// once per WeightPair and filtering the results to the non-dominated subset
// of the (time_minutes, cvar_95) plane, per spec.md §4.5.1.
//
// graph must already be enriched (enrich.GraphEnricher.EnrichAll applied).
// A fresh routesolver.RouteSolver is built per weight sample since weights
// are cvar_optimize construction parameters (routesolver.Option), not a
// per-call argument; RouteSolver holds no mutable state over the read-only
// graph, so this is cheap.
func ParetoFront(graph *tacmap.Graph, origin, destination int, cargoValue float64, scenarios []scenario.Scenario, opts ...ParetoOption) (ParetoFrontResult, error) {
	cfg := newParetoConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	points := make([]ParetoPoint, 0, len(cfg.weights))
	for _, w := range cfg.weights {
		rs := routesolver.NewRouteSolver(graph, routesolver.WithCVaRWeights(w.WeightTime, w.WeightRisk))

		route, err := rs.CVaROptimize(origin, destination, cargoValue, scenarios)
		if err != nil {
			return ParetoFrontResult{}, err
		}
		if route.Empty() {
			continue // NoPath under this weight sample: excluded, not fatal
		}

		points = append(points, ParetoPoint{Weights: w, Route: route})
	}

	if len(points) == 0 {
		return ParetoFrontResult{}, ErrEmptyParetoFront
	}

	return ParetoFrontResult{Points: filterNonDominated(points)}, nil
}

// filterNonDominated keeps only the points no other point dominates, per
// spec.md §8 property 4 ("idempotent and stable: filtering an
// already-non-dominated set returns it unchanged").
func filterNonDominated(points []ParetoPoint) []ParetoPoint {
	out := make([]ParetoPoint, 0, len(points))
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i == j {
				continue
			}
			if Dominates(q.Route, p.Route) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}

	return out
}

// Recommend implements spec.md §4.5.1's optional recommendation: min-
// normalize both axes and select argmin(urgency*t_hat + risk_aversion*r_hat).
// Returns ErrEmptyParetoFront if front has no points (spec.md §7).
func (front ParetoFrontResult) Recommend(urgency, riskAversion float64) (routesolver.RouteResult, error) {
	if len(front.Points) == 0 {
		return routesolver.RouteResult{}, ErrEmptyParetoFront
	}
	if len(front.Points) == 1 {
		return front.Points[0].Route, nil
	}

	minTime, maxTime := front.Points[0].Route.TimeMinutes, front.Points[0].Route.TimeMinutes
	minRisk, maxRisk := front.Points[0].Route.CVaR95, front.Points[0].Route.CVaR95
	for _, p := range front.Points[1:] {
		minTime, maxTime = minF(minTime, p.Route.TimeMinutes), maxF(maxTime, p.Route.TimeMinutes)
		minRisk, maxRisk = minF(minRisk, p.Route.CVaR95), maxF(maxRisk, p.Route.CVaR95)
	}

	timeSpan, riskSpan := maxTime-minTime, maxRisk-minRisk

	best := front.Points[0].Route
	bestScore := normalizedScore(best, minTime, timeSpan, minRisk, riskSpan, urgency, riskAversion)
	for _, p := range front.Points[1:] {
		score := normalizedScore(p.Route, minTime, timeSpan, minRisk, riskSpan, urgency, riskAversion)
		if score < bestScore {
			bestScore, best = score, p.Route
		}
	}

	return best, nil
}

func normalizedScore(r routesolver.RouteResult, minTime, timeSpan, minRisk, riskSpan, urgency, riskAversion float64) float64 {
	tHat, rHat := 0.0, 0.0
	if timeSpan > 0 {
		tHat = (r.TimeMinutes - minTime) / timeSpan
	}
	if riskSpan > 0 {
		rHat = (r.CVaR95 - minRisk) / riskSpan
	}

	return urgency*tHat + riskAversion*rHat
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
