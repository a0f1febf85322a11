package session

import (
	"errors"

	"github.com/katalvlaran/ghostroute/enrich"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// Sentinel errors for session operations.
var (
	// ErrOriginDestinationUnset reports that a mission's origin or
	// destination has not been set.
	ErrOriginDestinationUnset = errors.New("session: origin/destination not set")

	// ErrGraphNotBuilt indicates a solve was requested before Build.
	ErrGraphNotBuilt = errors.New("session: graph not built, call Build first")
)

// MissionConfig is the single structured config a caller assembles by hand
// to start a PlanningSession, per spec.md §1/§2. Required fields are
// validated with github.com/go-playground/validator/v10 struct tags.
// Alpha, WeightTime and WeightRisk are optional pointer fields, applied to
// the session's solver at Build; left nil, they keep routesolver's defaults.
type MissionConfig struct {
	// Origin and Destination are tacmap node IDs, set after the graph is
	// built (they cannot be validated against the graph before Build runs,
	// so they carry only a non-negative struct tag here).
	Origin      int `validate:"gte=0"`
	Destination int `validate:"gte=0"`

	// CargoValue is the mission's cargo_value in spec.md §3, consulted by
	// mean_risk, cvar_optimize, and the risk model's loss severity term.
	CargoValue float64 `validate:"required,gt=0"`

	// Weather is the mission weather condition consulted by EnrichAll's
	// speed/detection lookups.
	Weather enrich.WeatherCondition `validate:"required,oneof=clear rain snow fog rasputitsa"`

	// DepartureTimeUnix is validated as required but is not read by
	// PlanningSession: the timestamp the threat predictor sees is the one
	// given to the GraphEnricher through enrich.WithMissionTime.
	DepartureTimeUnix int64 `validate:"required"`

	// ScenarioSeed seeds the ScenarioSampler (spec.md §4.2). Zero is a valid
	// seed (ScenarioSampler substitutes its own fixed default).
	ScenarioSeed int64

	// ScenarioCount is S, the number of Monte Carlo scenarios sampled per
	// solve. Zero defaults to scenario.DefaultScenarioCount.
	ScenarioCount int `validate:"gte=0"`

	// Alpha overrides the CVaR confidence level (default 0.95) when non-nil.
	Alpha *float64 `validate:"omitempty,gt=0,lt=1"`

	// WeightTime and WeightRisk override cvar_optimize's objective weights
	// (default 0.5/0.5) when non-nil.
	WeightTime *float64 `validate:"omitempty,gte=0"`
	WeightRisk *float64 `validate:"omitempty,gte=0"`
}

// KillZones is a list of danger areas (spec.md §3). PlanningSession does
// not read it; the graph's killzone_penalty comes from the zones given to
// the GraphEnricher through enrich.WithKillZones.
type KillZones []tacmap.KillZone
