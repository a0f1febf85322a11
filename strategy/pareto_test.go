package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/scenario"
)

// TestParetoFrontMonotonicity is spec.md §8's S5: weights (1,0), (0.5,0.5),
// (0,1) produce at most 3 non-dominated points where the all-time point has
// minimum time_minutes and the all-risk point has minimum cvar_95.
func TestParetoFrontMonotonicity(t *testing.T) {
	g := buildDiamondGraph(t)
	scenarios := scenario.NewScenarioSampler(7).Sample(50)

	front, err := ParetoFront(g, 0, 3, 5, scenarios, WithWeightPairs([]WeightPair{
		{WeightTime: 1, WeightRisk: 0},
		{WeightTime: 0.5, WeightRisk: 0.5},
		{WeightTime: 0, WeightRisk: 1},
	}))
	require.NoError(t, err)
	require.NotEmpty(t, front.Points)
	assert.LessOrEqual(t, len(front.Points), 3)

	minTime, minRisk := front.Points[0], front.Points[0]
	for _, p := range front.Points[1:] {
		if p.Route.TimeMinutes < minTime.Route.TimeMinutes {
			minTime = p
		}
		if p.Route.CVaR95 < minRisk.Route.CVaR95 {
			minRisk = p
		}
	}

	for _, p := range front.Points {
		assert.LessOrEqual(t, minTime.Route.TimeMinutes, p.Route.TimeMinutes)
		assert.LessOrEqual(t, minRisk.Route.CVaR95, p.Route.CVaR95)
	}
}

// TestParetoFilterIdempotent is spec.md §8 universal property 4: filtering
// an already-non-dominated set returns it unchanged.
func TestParetoFilterIdempotent(t *testing.T) {
	g := buildDiamondGraph(t)
	scenarios := scenario.NewScenarioSampler(3).Sample(50)

	front, err := ParetoFront(g, 0, 3, 5, scenarios)
	require.NoError(t, err)
	require.NotEmpty(t, front.Points)

	again := filterNonDominated(front.Points)
	assert.Len(t, again, len(front.Points))
}

func TestParetoFrontWithoutScenarios(t *testing.T) {
	g := buildDiamondGraph(t)
	_, err := ParetoFront(g, 0, 3, 5, nil, WithWeightPairs([]WeightPair{{WeightTime: 1, WeightRisk: 0}}))
	require.NoError(t, err) // a single solvable sample still yields a front
}

func TestRecommendEmptyFront(t *testing.T) {
	_, err := ParetoFrontResult{}.Recommend(1, 1)
	assert.ErrorIs(t, err, ErrEmptyParetoFront)
}

func TestRecommendPicksWithinBounds(t *testing.T) {
	g := buildDiamondGraph(t)
	scenarios := scenario.NewScenarioSampler(11).Sample(50)

	front, err := ParetoFront(g, 0, 3, 5, scenarios)
	require.NoError(t, err)

	recommended, err := front.Recommend(1, 0) // pure urgency: should match min-time point
	require.NoError(t, err)

	minTime := front.Points[0].Route.TimeMinutes
	for _, p := range front.Points[1:] {
		if p.Route.TimeMinutes < minTime {
			minTime = p.Route.TimeMinutes
		}
	}
	assert.InDelta(t, minTime, recommended.TimeMinutes, 1e-9)
}
