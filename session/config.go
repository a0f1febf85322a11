package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-wide validator singleton, grounded on
// dd0wney-graphdb/pkg/validation/validator.go's init()-constructed instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks every struct-tag constraint on c and returns the first
// validation error wrapped with field context. A PlanningSession refuses to
// run any solve against an unvalidated MissionConfig.
func (c MissionConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("session: invalid mission config: %w", err)
	}

	return nil
}

// alphaOr returns the caller's override if set, else fallback.
func (c MissionConfig) alphaOr(fallback float64) float64 {
	if c.Alpha != nil {
		return *c.Alpha
	}

	return fallback
}

// weightsOr returns the caller's weight_time/weight_risk overrides if set,
// else the supplied fallbacks.
func (c MissionConfig) weightsOr(fallbackTime, fallbackRisk float64) (float64, float64) {
	wt, wr := fallbackTime, fallbackRisk
	if c.WeightTime != nil {
		wt = *c.WeightTime
	}
	if c.WeightRisk != nil {
		wr = *c.WeightRisk
	}

	return wt, wr
}

// scenarioCountOr returns ScenarioCount if positive, else fallback.
func (c MissionConfig) scenarioCountOr(fallback int) int {
	if c.ScenarioCount > 0 {
		return c.ScenarioCount
	}

	return fallback
}
