// Package risk computes per-edge, per-path, and tail-risk (CVaR) statistics
// over a fixed attributed graph and scenario set.
//
// EdgeRiskModel is a pure function (spec.md §4.3); the path/CVaR reductions
// follow matrix/impl_statistics.go's style: deterministic single-pass
// reductions with fixed iteration order and no hidden state. Exact CVaR/survival-probability semantics are grounded on
// ghost_supply/decision/cvar_routing.py's _calculate_cvar and
// _calculate_survival_probability, which spec.md §4.3 leaves in prose form
// only ("sort scenario-path-risks ascending...").
package risk
