// Package scenario produces reproducible scenario sets for risk estimation.
//
// A Scenario is pure data: {visibility_mult, detection_mult, patrol_presence}
// sampled independently per scenario under a caller-supplied seed (spec.md
// §4.2). ScenarioSampler's seed derivation is grounded on tsp/rng.go's
// SplitMix64 deriveSeed/deriveRNG pair: a single base seed deterministically
// fans out into one independent substream per scenario index, so callers
// can request 50 or 100 scenarios from the same seed and get a strict
// prefix relationship (the first 50 of a 100-scenario run equal a
// dedicated 50-scenario run), matching the teacher's "derive independent
// streams without correlation" rationale.
package scenario
