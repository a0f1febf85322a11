// Package strategy builds on routesolver to answer two questions a single
// route can't: which time/risk trade-offs are worth offering at all
// (ParetoFront), and how to route unpredictably against a patrolling
// defender who has seen the whole portfolio in advance (StackelbergSolver),
// per spec.md §4.5.
package strategy
