// Package enrich builds and maintains the attributed transport graph that
// every solver package treats as read-only during a solve.
//
// GraphEnricher is adapted from lvlath/builder's Constructor/BuilderOption
// pattern (builder/impl_grid.go, builder/option.go): a functional-options
// struct configures perception collaborators (elevation raster, viewshed,
// threat predictor, speed/weather table, kill-zone list), and enrichment
// runs as a deterministic multi-pass transform over a tacmap.Graph rather
// than lvlath's single-shot topology constructors. The synthetic grid
// fallback reuses builder.Grid's row-major construction shape directly,
// generalized from string "r,c" vertex IDs and int64 edge weights to
// tacmap.Node positions (via geo.MetersToLatLon) and tacmap.EdgeAttrs.
package enrich
