// Package session is the caller-facing orchestration layer: it owns a
// tacmap.Graph for the lifetime of one planning session and wires
// enrich -> scenario -> risk -> routesolver -> strategy behind a single
// validated entry point, per SPEC_FULL.md §A. It performs no file or CLI
// configuration loading (spec.md §1's Non-goals) — callers assemble a
// MissionConfig in process and pass it in.
package session
