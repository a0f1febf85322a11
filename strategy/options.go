package strategy

// defaultParetoSamples is K in spec.md §4.5.1: "default five equally spaced
// from all-time to all-risk".
const defaultParetoSamples = 5

// defaultPortfolioSize is K in spec.md §4.5.2's route portfolio.
const defaultPortfolioSize = 6

// defaultDefenderConfigs is M in spec.md §4.5.2.
const defaultDefenderConfigs = 10

// defaultDiversityPenaltyHours is the per-edge penalty (spec.md §4.5.2:
// "add a per-edge penalty of 100 to every edge used by any existing
// route"). Expressed in hours since PenalizedShortestTime penalizes
// travel_time_hours.
const defaultDiversityPenaltyHours = 100.0

type paretoConfig struct {
	weights []WeightPair
}

func newParetoConfig() paretoConfig {
	return paretoConfig{weights: DefaultWeightPairs(defaultParetoSamples)}
}

// ParetoOption customizes ParetoFront's weight sweep.
type ParetoOption func(*paretoConfig)

// WithWeightPairs overrides the default five-point simplex sweep. Panics if
// weights is empty.
func WithWeightPairs(weights []WeightPair) ParetoOption {
	if len(weights) == 0 {
		panic("strategy: WithWeightPairs(empty)")
	}
	return func(c *paretoConfig) { c.weights = append([]WeightPair(nil), weights...) }
}

// DefaultWeightPairs returns n equally-spaced (weight_time, weight_risk)
// samples from all-time (1,0) to all-risk (0,1) inclusive, per spec.md
// §4.5.1. Panics if n < 2.
func DefaultWeightPairs(n int) []WeightPair {
	if n < 2 {
		panic("strategy: DefaultWeightPairs(n<2)")
	}

	out := make([]WeightPair, n)
	for i := 0; i < n; i++ {
		t := 1.0 - float64(i)/float64(n-1)
		out[i] = WeightPair{WeightTime: t, WeightRisk: 1 - t}
	}

	return out
}

type stackelbergConfig struct {
	portfolioSize       int
	defenderConfigs     int
	diversityPenaltyHrs float64
	seed                int64
	cargoValue          float64
}

func newStackelbergConfig() stackelbergConfig {
	return stackelbergConfig{
		portfolioSize:       defaultPortfolioSize,
		defenderConfigs:     defaultDefenderConfigs,
		diversityPenaltyHrs: defaultDiversityPenaltyHours,
		seed:                1,
		cargoValue:          5,
	}
}

// StackelbergOption customizes StackelbergSolver's portfolio size, defender
// sample count, and RNG seed.
type StackelbergOption func(*stackelbergConfig)

// WithPortfolioSize overrides K, the target route portfolio size. Panics if
// k < 1.
func WithPortfolioSize(k int) StackelbergOption {
	if k < 1 {
		panic("strategy: WithPortfolioSize(k<1)")
	}
	return func(c *stackelbergConfig) { c.portfolioSize = k }
}

// WithDefenderConfigCount overrides M, the number of sampled defender
// patrol layouts. Panics if m < 1.
func WithDefenderConfigCount(m int) StackelbergOption {
	if m < 1 {
		panic("strategy: WithDefenderConfigCount(m<1)")
	}
	return func(c *stackelbergConfig) { c.defenderConfigs = m }
}

// WithStackelbergSeed overrides the deterministic RNG seed used to sample
// defender configurations (spec.md §4.5.2).
func WithStackelbergSeed(seed int64) StackelbergOption {
	return func(c *stackelbergConfig) { c.seed = seed }
}

// WithStackelbergCargoValue overrides the cargo value passed to the
// cvar_optimize and mean_risk portfolio solves and used to score every
// portfolio route. Panics if value <= 0.
func WithStackelbergCargoValue(value float64) StackelbergOption {
	if value <= 0 {
		panic("strategy: WithStackelbergCargoValue(value<=0)")
	}
	return func(c *stackelbergConfig) { c.cargoValue = value }
}

// equilibriumTolerance bounds the floating-point slack accepted when
// verifying a candidate support's best-response and probability-simplex
// conditions.
const equilibriumTolerance = 1e-6
