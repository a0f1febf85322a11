// Package geo provides the geospatial primitives shared by every routing
// package: haversine distance, bearing, slope classification, local
// projection, and path interpolation.
//
// None of these helpers depend on tacmap or routesolver; they are pure
// functions over (lat, lon) pairs and are safe to call concurrently.
//
// Complexity: every function here is O(1) except InterpolatePath and
// PathLength, which are O(n) in the number of path points.
package geo
