package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghostroute/routesolver"
	"github.com/katalvlaran/ghostroute/scenario"
)

func TestGenerateDiverseRoutesDeduplicatesAndScores(t *testing.T) {
	g := buildDiamondGraph(t)
	rs := routesolver.NewRouteSolver(g)
	scenarios := scenario.NewScenarioSampler(42).Sample(50)

	routes, err := GenerateDiverseRoutes(rs, 0, 3, 5, scenarios, 6, 100)
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	seen := make(map[string]bool)
	for _, r := range routes {
		key := pathKey(r.NodePath)
		assert.False(t, seen[key], "duplicate path in portfolio")
		seen[key] = true
		assert.Greater(t, r.MeanRiskScore+1, 1.0) // scored (> 0); sanity, not a tight bound
	}

	// The diamond graph only has two distinct simple origin->destination
	// paths, so padding must stop well short of the requested 6.
	assert.LessOrEqual(t, len(routes), 2)
}

func TestGenerateDiverseRoutesNoPath(t *testing.T) {
	g := buildDiamondGraph(t)
	rs := routesolver.NewRouteSolver(g)

	_, err := GenerateDiverseRoutes(rs, 3, 0, 5, nil, 4, 100)
	assert.ErrorIs(t, err, ErrNoRoutes)
}
