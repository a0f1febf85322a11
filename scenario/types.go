package scenario

// PatrolPresence is the categorical multiplier on scenario.patrol_presence
// (spec.md §3: "{0.8,1.0,1.2,1.5}").
var patrolPresenceLevels = []float64{0.8, 1.0, 1.2, 1.5}

const (
	visibilityMultMin = 0.7
	visibilityMultMax = 1.3
	detectionMultMin  = 0.8
	detectionMultMax  = 1.2

	// DefaultScenarioCount is S in spec.md §4.2.
	DefaultScenarioCount = 100

	// ReducedScenarioCount is the S the CVaR router may fall back to under
	// MILP load, per spec.md §4.2.
	ReducedScenarioCount = 50
)

// Scenario is one independently-sampled realization of the uncertain
// detection/visibility/patrol conditions used to compute edge risk
// (spec.md §3).
type Scenario struct {
	VisibilityMult float64
	DetectionMult  float64
	PatrolPresence float64
}
