package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDeterministic(t *testing.T) {
	a := NewScenarioSampler(42).Sample(10)
	b := NewScenarioSampler(42).Sample(10)
	assert.Equal(t, a, b)
}

func TestSampleDifferentSeedsDiverge(t *testing.T) {
	a := NewScenarioSampler(1).Sample(10)
	b := NewScenarioSampler(2).Sample(10)
	assert.NotEqual(t, a, b)
}

func TestSamplePrefixStability(t *testing.T) {
	full := NewScenarioSampler(7).Sample(DefaultScenarioCount)
	prefix := NewScenarioSampler(7).Sample(ReducedScenarioCount)

	require.Len(t, full, DefaultScenarioCount)
	require.Len(t, prefix, ReducedScenarioCount)
	assert.Equal(t, full[:ReducedScenarioCount], prefix)
}

func TestSampleRangesRespected(t *testing.T) {
	scenarios := NewScenarioSampler(99).Sample(200)
	for _, sc := range scenarios {
		assert.GreaterOrEqual(t, sc.VisibilityMult, visibilityMultMin)
		assert.LessOrEqual(t, sc.VisibilityMult, visibilityMultMax)
		assert.GreaterOrEqual(t, sc.DetectionMult, detectionMultMin)
		assert.LessOrEqual(t, sc.DetectionMult, detectionMultMax)
		assert.Contains(t, patrolPresenceLevels, sc.PatrolPresence)
	}
}

func TestZeroSeedIsDeterministicDefault(t *testing.T) {
	a := NewScenarioSampler(0).Sample(5)
	b := NewScenarioSampler(0).Sample(5)
	assert.Equal(t, a, b)
}
