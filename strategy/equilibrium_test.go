package strategy

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// TestEquilibriumDegenerateK1 is half of spec.md §8's S6: with K=1, strategy
// = [1.0].
func TestEquilibriumDegenerateK1(t *testing.T) {
	strategy, kind := solveEquilibrium([][]float64{{-0.3, -0.5, -0.2}})
	assert.Equal(t, EquilibriumDegenerate, kind)
	assert.Equal(t, []float64{1.0}, strategy)
}

// TestEquilibriumUniformPayoff is the other half of S6: with a uniform
// payoff matrix (all entries equal), strategy is uniform within 1e-6.
func TestEquilibriumUniformPayoff(t *testing.T) {
	payoff := [][]float64{
		{-0.4, -0.4, -0.4},
		{-0.4, -0.4, -0.4},
		{-0.4, -0.4, -0.4},
	}
	strategy, kind := solveEquilibrium(payoff)
	assert.Equal(t, EquilibriumUniformFallback, kind)
	assert.Len(t, strategy, 3)
	for _, p := range strategy {
		assert.InDelta(t, 1.0/3.0, p, 1e-6)
	}
}

// TestEquilibriumNonTrivial exercises a 2x2 matrix with a genuine mixed
// equilibrium (matching pennies structure, rescaled to <= 0 payoffs).
func TestEquilibriumNonTrivial(t *testing.T) {
	payoff := [][]float64{
		{-0.1, -0.9},
		{-0.9, -0.1},
	}
	strategy, kind := solveEquilibrium(payoff)
	sum := 0.0
	for _, p := range strategy {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.NotEqual(t, EquilibriumDegenerate, kind)
	// By symmetry the equilibrium mix is 50/50.
	assert.InDelta(t, 0.5, strategy[0], 1e-6)
	assert.InDelta(t, 0.5, strategy[1], 1e-6)
}

// TestEquilibriumIsProbabilityVector is spec.md §8 universal property 5:
// for a non-degenerate payoff matrix, the returned mixed strategy is a
// probability vector (non-negative, sums to 1 within 1e-6).
func TestEquilibriumIsProbabilityVector(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("solveEquilibrium always returns a probability vector", prop.ForAll(
		func(flat []float64) bool {
			k := 3
			m := len(flat) / k
			if m == 0 {
				return true
			}
			payoff := make([][]float64, k)
			for i := 0; i < k; i++ {
				payoff[i] = make([]float64, m)
				for j := 0; j < m; j++ {
					payoff[i][j] = -flat[i*m+j]
				}
			}

			strategy, _ := solveEquilibrium(payoff)
			if len(strategy) != k {
				return false
			}

			sum := 0.0
			for _, p := range strategy {
				if p < -1e-9 {
					return false
				}
				sum += p
			}

			return sum > 1-1e-6 && sum < 1+1e-6
		},
		gen.SliceOfN(12, gen.Float64Range(0, 1)),
	))

	properties.TestingRun(t)
}
