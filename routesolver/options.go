package routesolver

import "time"

// defaultCVaRTimeBudget is the MILP/BnB wall-clock budget, per spec.md §5
// ("MILP 300 s default").
const defaultCVaRTimeBudget = 300 * time.Second

// defaultAlpha is the CVaR confidence level in spec.md §4.4's
// cvar_optimize default parameters.
const defaultAlpha = 0.95

// defaultWeight is the default weight_time/weight_risk split in spec.md
// §4.4's cvar_optimize default parameters.
const defaultWeight = 0.5

type solverConfig struct {
	cvarTimeBudget time.Duration
	alpha          float64
	weightTime     float64
	weightRisk     float64
}

func newSolverConfig() solverConfig {
	return solverConfig{
		cvarTimeBudget: defaultCVaRTimeBudget,
		alpha:          defaultAlpha,
		weightTime:     defaultWeight,
		weightRisk:     defaultWeight,
	}
}

// Option customizes a RouteSolver's CVaR branch-and-bound parameters.
type Option func(*solverConfig)

// WithCVaRTimeBudget overrides the soft wall-clock budget CVaROptimize
// grants its branch-and-bound search. When the budget runs out, the best
// path found so far is returned; shortest_time is used only if none was
// found. Panics if budget <= 0.
func WithCVaRTimeBudget(budget time.Duration) Option {
	if budget <= 0 {
		panic("routesolver: WithCVaRTimeBudget(budget<=0)")
	}
	return func(c *solverConfig) { c.cvarTimeBudget = budget }
}

// WithCVaRAlpha overrides the default CVaR confidence level. Panics if
// alpha is not in (0,1).
func WithCVaRAlpha(alpha float64) Option {
	if alpha <= 0 || alpha >= 1 {
		panic("routesolver: WithCVaRAlpha(alpha out of (0,1))")
	}
	return func(c *solverConfig) { c.alpha = alpha }
}

// WithCVaRWeights overrides the default weight_time/weight_risk split.
// Panics if either weight is negative.
func WithCVaRWeights(weightTime, weightRisk float64) Option {
	if weightTime < 0 || weightRisk < 0 {
		panic("routesolver: WithCVaRWeights(negative weight)")
	}
	return func(c *solverConfig) { c.weightTime, c.weightRisk = weightTime, weightRisk }
}
