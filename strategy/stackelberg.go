package strategy

import (
	"math/rand"

	"github.com/katalvlaran/ghostroute/routesolver"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// StackelbergSolver answers spec.md §4.5.2: build a route portfolio of size
// K, sample M defender patrol configurations, score every (route, config)
// pair into a zero-sum payoff matrix, and return the attacker's mixed
// strategy from a support equilibrium — a randomized routing policy that
// resists a defender who has observed the whole distribution in advance.
func StackelbergSolver(graph *tacmap.Graph, origin, destination int, scenarios []scenario.Scenario, opts ...StackelbergOption) (StackelbergResult, error) {
	cfg := newStackelbergConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rs := routesolver.NewRouteSolver(graph)

	routes, err := GenerateDiverseRoutes(rs, origin, destination, cfg.cargoValue, scenarios, cfg.portfolioSize, cfg.diversityPenaltyHrs)
	if err != nil {
		return StackelbergResult{}, err
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	defenders := SampleDefenderConfigs(routes, cfg.defenderConfigs, rng)

	payoff := BuildPayoffMatrix(routes, defenders)
	strategy, kind := solveEquilibrium(payoff)

	return StackelbergResult{
		Routes:    routes,
		Defenders: defenders,
		Payoff:    payoff,
		Strategy:  strategy,
		Kind:      kind,
	}, nil
}

// SampleRoute draws one route from the Stackelberg mixed strategy using the
// supplied RNG, per SPEC_FULL.md §D.2 (restored from
// ghost_supply/decision/game_theory.py: sample_route; not named in spec.md
// but the natural terminal operation that makes the mixed strategy
// actionable). Uses a cumulative-weight draw, falling back to the last
// route on floating-point rounding at the tail of the distribution.
func (res StackelbergResult) SampleRoute(rng *rand.Rand) routesolver.RouteResult {
	if len(res.Routes) == 0 {
		return routesolver.RouteResult{}
	}

	draw := rng.Float64()
	cumulative := 0.0
	for i, p := range res.Strategy {
		cumulative += p
		if draw < cumulative {
			return res.Routes[i]
		}
	}

	return res.Routes[len(res.Routes)-1]
}
