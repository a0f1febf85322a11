package risk

import (
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// maxEdgeRisk caps a single edge's risk score to bound MILP coefficients
// and prevent arithmetic pathologies on forbidden (killzone_penalty up to
// 1000) edges, per spec.md §4.3.
const maxEdgeRisk = 10.0

// DefaultSurvivalLambda is the calibration constant in the survival
// probability formula exp(-lambda * cvar_95). spec.md §9's Open Questions
// call it "configurable" rather than derived from data; 0.1 matches the
// documented calibration in the original prototype (score ~5 -> ~60%
// survival, ~15 -> ~22%, ~30 -> ~5%).
const DefaultSurvivalLambda = 0.1

// EdgeRisk implements spec.md §4.3's contract:
//
//	risk(edge, scenario, cargo_value) = min(10,
//	    detection_base
//	  * scenario.detection_mult
//	  * (1 + visibility * scenario.visibility_mult * 0.5)
//	  * scenario.patrol_presence
//	  * killzone_penalty
//	  * cargo_value / 10)
func EdgeRisk(attrs tacmap.EdgeAttrs, sc scenario.Scenario, cargoValue float64) float64 {
	r := attrs.DetectionBase *
		sc.DetectionMult *
		(1 + attrs.Visibility*sc.VisibilityMult*0.5) *
		sc.PatrolPresence *
		attrs.KillzonePenalty *
		cargoValue / 10

	if r > maxEdgeRisk {
		return maxEdgeRisk
	}
	if r < 0 {
		return 0
	}

	return r
}

// PathRisk sums edge risks along a path under a single scenario, per
// spec.md §4.3 ("path risk under a scenario: simple sum of edge risks").
func PathRisk(edges []tacmap.EdgeAttrs, sc scenario.Scenario, cargoValue float64) float64 {
	total := 0.0
	for _, e := range edges {
		total += EdgeRisk(e, sc, cargoValue)
	}

	return total
}

// MeanRisk returns the arithmetic mean of path risk over every scenario.
func MeanRisk(edges []tacmap.EdgeAttrs, scenarios []scenario.Scenario, cargoValue float64) float64 {
	if len(scenarios) == 0 {
		return 0
	}

	sum := 0.0
	for _, sc := range scenarios {
		sum += PathRisk(edges, sc, cargoValue)
	}

	return sum / float64(len(scenarios))
}
