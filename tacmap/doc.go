// Package tacmap defines the attributed transport graph: Node, Edge,
// EdgeAttrs, KillZone, and the thread-safe Graph container that owns them.
//
// tacmap is adapted from lvlath/core's Vertex/Edge/Graph primitives
// (muVert/muEdgeAdj RWMutex split, adjacency-list storage, sentinel errors),
// generalized from core's generic string-keyed int64-weighted graph to the
// fixed geographic/tactical attribute set spec.md §3 requires: every edge
// carries distance_km, road_type, base_speed_kmh, travel_time_hours,
// visibility, detection_base, and killzone_penalty rather than a single
// scalar Weight, and every node carries a (lat, lon) position plus an
// optional role tag instead of an opaque Metadata bag (see DESIGN.md,
// "dynamic edge attribute bags" under spec.md §9).
//
// A Graph is built once per mission (by enrich.GraphEnricher) and treated as
// read-only by every solver package during a solve — mutation only happens
// between solves, matching spec.md §5's concurrency model.
package tacmap
