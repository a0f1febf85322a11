package session

import (
	"time"

	"github.com/katalvlaran/ghostroute/enrich"
	"github.com/katalvlaran/ghostroute/internal/obs"
	"github.com/katalvlaran/ghostroute/routesolver"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/strategy"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// PlanningSession is the caller-facing orchestration type: it owns a
// tacmap.Graph for the lifetime of one mission and wires
// enrich -> scenario -> risk -> routesolver -> strategy behind a single
// validated entry point (spec.md §5: "one graph per mission, mutated in
// place between solves"). A PlanningSession is not safe for concurrent
// solves against a single instance; callers needing concurrency share the
// underlying *tacmap.Graph across independent RouteSolvers instead (see
// routesolver.RouteSolver's own concurrency note).
type PlanningSession struct {
	config   MissionConfig
	enricher *enrich.GraphEnricher
	graph    *tacmap.Graph
	solver   *routesolver.RouteSolver
	obs      *obs.Observer
}

// New constructs a PlanningSession from a validated MissionConfig and the
// perception collaborators the enrichment pass consults. The Observer may
// be nil; session then runs silently (obs.Observer is nil-safe throughout).
func New(config MissionConfig, enricher *enrich.GraphEnricher, observer *obs.Observer) (*PlanningSession, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &PlanningSession{config: config, enricher: enricher, obs: observer}, nil
}

// Build simplifies raw into the session's attributed graph and runs the
// first enrichment pass, per spec.md §4.1's Simplify -> EnrichAll sequence.
// Build may be called again with a fresh RawGraph to replace the session's
// graph entirely (e.g. a new area of operations); re-enrichment between
// solves with unchanged topology should use Reenrich instead.
func (ps *PlanningSession) Build(raw enrich.RawGraph) error {
	g, err := ps.enricher.Simplify(raw)
	if err != nil {
		return err
	}

	if err := ps.enricher.EnrichAll(g, ps.config.Weather, ps.config.CargoValue); err != nil {
		return err
	}

	ps.graph = g
	ps.solver = routesolver.NewRouteSolver(g, ps.solverOptions()...)
	ps.obs.Infow("session graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

// solverOptions translates the MissionConfig's optional overrides into
// routesolver.Options, applying only those the caller actually set so
// routesolver's own defaults (spec.md §4.4) govern everything else.
func (ps *PlanningSession) solverOptions() []routesolver.Option {
	var opts []routesolver.Option
	if ps.config.Alpha != nil {
		opts = append(opts, routesolver.WithCVaRAlpha(*ps.config.Alpha))
	}
	if ps.config.WeightTime != nil || ps.config.WeightRisk != nil {
		wt, wr := ps.config.weightsOr(0.5, 0.5)
		opts = append(opts, routesolver.WithCVaRWeights(wt, wr))
	}

	return opts
}

// Reenrich re-derives every edge's mission-dependent attributes in place
// under a new weather condition, without rebuilding graph topology (spec.md
// §5: "mutate in place between solves"). Graph must already be built.
func (ps *PlanningSession) Reenrich(weather enrich.WeatherCondition) error {
	if ps.graph == nil {
		return ErrGraphNotBuilt
	}

	ps.config.Weather = weather

	return ps.enricher.EnrichAll(ps.graph, weather, ps.config.CargoValue)
}

// Graph exposes the session's underlying attributed graph, e.g. so a caller
// can add/attach synthetic depot or frontline nodes via the session's
// GraphEnricher before solving.
func (ps *PlanningSession) Graph() *tacmap.Graph {
	return ps.graph
}

// scenarios samples the session's Monte Carlo scenario set once per solve
// call, keyed by the session's configured seed and count.
func (ps *PlanningSession) scenarios() []scenario.Scenario {
	n := ps.config.scenarioCountOr(scenario.DefaultScenarioCount)

	return scenario.NewScenarioSampler(ps.config.ScenarioSeed).Sample(n)
}

// Solve runs method (one of routesolver.MethodShortestDistance,
// MethodShortestTime, MethodMeanRisk, MethodCVaROptimize) from origin to
// destination, recording duration and fallback metrics against the
// session's Observer (spec.md §9: callers observe fallback via the result's
// Method tag; the Observer additionally records it for operational
// visibility).
func (ps *PlanningSession) Solve(method string) (routesolver.RouteResult, error) {
	if ps.graph == nil {
		return routesolver.RouteResult{}, ErrGraphNotBuilt
	}

	start := time.Now()
	defer ps.obs.ObserveSolve(method, start)

	var (
		result routesolver.RouteResult
		err    error
	)

	switch method {
	case routesolver.MethodShortestDistance:
		result, err = ps.solver.ShortestDistance(ps.config.Origin, ps.config.Destination)
	case routesolver.MethodShortestTime:
		result, err = ps.solver.ShortestTime(ps.config.Origin, ps.config.Destination)
	case routesolver.MethodMeanRisk:
		result, err = ps.solver.MeanRisk(ps.config.Origin, ps.config.Destination, ps.config.CargoValue)
	default:
		result, err = ps.solver.CVaROptimize(ps.config.Origin, ps.config.Destination, ps.config.CargoValue, ps.scenarios())
	}

	if err == nil && result.Method == routesolver.MethodCVaRFallbackTime {
		ps.obs.RecordFallback(method, "bb_exhausted_or_timeout")
	}

	return result, err
}

// ParetoFront runs strategy.ParetoFront over the session's graph and
// Monte Carlo scenario set, per spec.md §4.5.1.
func (ps *PlanningSession) ParetoFront(opts ...strategy.ParetoOption) (strategy.ParetoFrontResult, error) {
	if ps.graph == nil {
		return strategy.ParetoFrontResult{}, ErrGraphNotBuilt
	}

	return strategy.ParetoFront(ps.graph, ps.config.Origin, ps.config.Destination, ps.config.CargoValue, ps.scenarios(), opts...)
}

// StackelbergSolver runs strategy.StackelbergSolver over the session's
// graph and Monte Carlo scenario set, per spec.md §4.5.2.
func (ps *PlanningSession) StackelbergSolver(opts ...strategy.StackelbergOption) (strategy.StackelbergResult, error) {
	if ps.graph == nil {
		return strategy.StackelbergResult{}, ErrGraphNotBuilt
	}

	allOpts := append([]strategy.StackelbergOption{strategy.WithStackelbergCargoValue(ps.config.CargoValue)}, opts...)

	return strategy.StackelbergSolver(ps.graph, ps.config.Origin, ps.config.Destination, ps.scenarios(), allOpts...)
}

// RiskOf recomputes the scenario-based risk statistics for an
// already-solved RouteResult without re-solving the path, delegating to
// routesolver.RouteSolver.ScoreRoute.
func (ps *PlanningSession) RiskOf(result routesolver.RouteResult) (routesolver.RouteResult, error) {
	if ps.graph == nil {
		return routesolver.RouteResult{}, ErrGraphNotBuilt
	}

	return ps.solver.ScoreRoute(result, ps.scenarios(), ps.config.CargoValue)
}
