package risk

import (
	"math"
	"sort"
)

// CVaR computes the Conditional Value at Risk at confidence level alpha
// over a set of scenario risk realizations, per spec.md §4.3: "sort
// scenario-path-risks ascending; let var = sorted[floor(alpha*S)]; CVaR =
// mean of {r : r >= var}."
//
// Grounded verbatim on ghost_supply/decision/cvar_routing.py's
// _calculate_cvar: the var index clamps to the last element when
// alpha*len(risks) rounds to len(risks), and an empty tail (impossible
// once var itself is included, but guarded defensively) falls back to var.
func CVaR(risks []float64, alpha float64) float64 {
	if len(risks) == 0 {
		return 0
	}

	sorted := make([]float64, len(risks))
	copy(sorted, risks)
	sort.Float64s(sorted)

	varIndex := int(alpha * float64(len(sorted)))
	if varIndex >= len(sorted) {
		varIndex = len(sorted) - 1
	}
	varValue := sorted[varIndex]

	sum, count := 0.0, 0
	for _, r := range sorted {
		if r >= varValue {
			sum += r
			count++
		}
	}
	if count == 0 {
		return varValue
	}

	return sum / float64(count)
}

// Mean returns the arithmetic mean of risks, or 0 for an empty set.
func Mean(risks []float64) float64 {
	if len(risks) == 0 {
		return 0
	}

	sum := 0.0
	for _, r := range risks {
		sum += r
	}

	return sum / float64(len(risks))
}

// SurvivalProbability converts a raw CVaR risk score into a survival
// probability via exponential decay: exp(-lambda * riskScore), per
// ghost_supply/decision/cvar_routing.py's _calculate_survival_probability.
func SurvivalProbability(riskScore, lambda float64) float64 {
	return math.Exp(-lambda * riskScore)
}
