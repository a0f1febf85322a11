// Package routesolver computes concrete routes over a fixed attributed
// graph: ShortestDistance, ShortestTime, MeanRisk (float64-weighted
// Dijkstra) and CVaROptimize (deterministic branch-and-bound with a
// Dijkstra fallback), per spec.md §4.4.
//
// The Dijkstra core is generalized from dijkstra/dijkstra.go: same
// lazy-decrease-key min-heap shape and runner/process/relax split, but
// over int tacmap node IDs and float64 weights instead of string vertex
// IDs and int64 weights (this domain's weights are km/hours/risk scores,
// never integral). CVaROptimize's branch-and-bound is generalized from
// tsp/bb.go's bbEngine: deterministic DFS over edge-selection subtrees
// with an admissible lower bound and a soft wall-clock budget checked
// every fixed number of expansions, because the pack carries no MILP
// solver library for the true mixed-integer formulation in spec.md §4.4
// (confirmed absent across every example repo).
package routesolver
