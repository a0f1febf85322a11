package geo

import (
	"math"

	geojson "github.com/paulmach/go.geojson"
)

// earthRadiusKm is the mean Earth radius used by every distance/projection
// helper in this package.
const earthRadiusKm = 6371.0

// Point is a (lat, lon) pair in decimal degrees. Every function in this
// package and in tacmap/routesolver that talks about "coordinates" uses this
// ordering — GeoJSON's [lon, lat] ordering is only ever used at the
// LineString boundary (NewLineString / PointsFromGeometry).
type Point struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance between two points in
// kilometers. Grounded on ghost_supply/utils/geo.py:haversine_distance
// (there backed by geopy.distance.geodesic; here computed directly since no
// geodesy package is wired elsewhere in the module).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// HaversinePoints is Haversine over two Point values.
func HaversinePoints(p1, p2 Point) float64 {
	return Haversine(p1.Lat, p1.Lon, p2.Lat, p2.Lon)
}

// Bearing returns the initial bearing in degrees [0, 360) from (lat1, lon1)
// to (lat2, lon2).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLonRad := toRadians(lon2 - lon1)

	y := math.Sin(dLonRad) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLonRad)

	bearingDeg := toDegrees(math.Atan2(y, x))

	return math.Mod(bearingDeg+360, 360)
}

// DestinationPoint returns the point reached by travelling distanceKm from
// (lat, lon) along bearingDeg.
func DestinationPoint(lat, lon, bearingDeg, distanceKm float64) (float64, float64) {
	latRad := toRadians(lat)
	lonRad := toRadians(lon)
	bearingRad := toRadians(bearingDeg)

	lat2Rad := math.Asin(
		math.Sin(latRad)*math.Cos(distanceKm/earthRadiusKm) +
			math.Cos(latRad)*math.Sin(distanceKm/earthRadiusKm)*math.Cos(bearingRad),
	)
	lon2Rad := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(distanceKm/earthRadiusKm)*math.Cos(latRad),
		math.Cos(distanceKm/earthRadiusKm)-math.Sin(latRad)*math.Sin(lat2Rad),
	)

	return toDegrees(lat2Rad), toDegrees(lon2Rad)
}

// Slope returns the slope percentage between two points given their
// elevations (meters) and the horizontal distance between them (meters).
// Restored from ghost_supply/utils/geo.py:calculate_slope (dropped by the
// spec.md distillation; see SPEC_FULL.md §D.3).
func Slope(elevation1, elevation2, distanceM float64) float64 {
	if distanceM == 0 {
		return 0
	}

	return math.Abs((elevation2-elevation1)/distanceM) * 100
}

// SlopeBand classifies a slope percentage into the bands spec.md §4.1 uses
// for the base-speed modulation table: "<5", "5-10", "10-15", "15-20", ">=20".
func SlopeBand(slopePct float64) string {
	switch {
	case slopePct < 5:
		return "<5"
	case slopePct < 10:
		return "5-10"
	case slopePct < 15:
		return "10-15"
	case slopePct < 20:
		return "15-20"
	default:
		return ">=20"
	}
}

// PointInCircle reports whether point lies within radiusKm of center.
func PointInCircle(point, center Point, radiusKm float64) bool {
	return HaversinePoints(point, center) <= radiusKm
}

// PathLength returns the cumulative haversine length of a path in km.
func PathLength(path []Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += HaversinePoints(path[i-1], path[i])
	}

	return total
}

// InterpolatePath resamples path to exactly numPoints points, evenly spaced
// by cumulative distance. Paths with fewer than two points, or a
// zero-length path, are returned unchanged. Restored from
// ghost_supply/utils/geo.py:interpolate_path (see SPEC_FULL.md §D).
func InterpolatePath(path []Point, numPoints int) []Point {
	if len(path) < 2 || numPoints < 2 {
		return path
	}

	cumulative := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cumulative[i] = cumulative[i-1] + HaversinePoints(path[i-1], path[i])
	}

	total := cumulative[len(cumulative)-1]
	if total == 0 {
		return path
	}

	out := make([]Point, 0, numPoints)
	for k := 0; k < numPoints; k++ {
		target := total * float64(k) / float64(numPoints-1)
		out = append(out, interpolateAt(path, cumulative, target))
	}

	return out
}

// interpolateAt finds the path segment bracketing targetDist and linearly
// interpolates within it.
func interpolateAt(path []Point, cumulative []float64, targetDist float64) Point {
	for i := 0; i < len(cumulative)-1; i++ {
		if cumulative[i] <= targetDist && targetDist <= cumulative[i+1] {
			segLen := cumulative[i+1] - cumulative[i]
			ratio := 0.0
			if segLen > 0 {
				ratio = (targetDist - cumulative[i]) / segLen
			}

			return Point{
				Lat: path[i].Lat + ratio*(path[i+1].Lat-path[i].Lat),
				Lon: path[i].Lon + ratio*(path[i+1].Lon-path[i].Lon),
			}
		}
	}

	return path[len(path)-1]
}

// LatLonToMeters projects (lat, lon) into a locally flat (x, y) metric frame
// centered on (refLat, refLon). Restored from
// ghost_supply/utils/geo.py:latlon_to_meters for the synthetic grid-graph
// fallback (SPEC_FULL.md §D.4), where node spacing must be computed in a
// metric frame rather than naively in degrees.
func LatLonToMeters(lat, lon, refLat, refLon float64) (x, y float64) {
	const earthRadiusM = earthRadiusKm * 1000

	x = earthRadiusM * toRadians(lon-refLon) * math.Cos(toRadians(refLat))
	y = earthRadiusM * toRadians(lat-refLat)

	return x, y
}

// MetersToLatLon is the inverse of LatLonToMeters.
func MetersToLatLon(x, y, refLat, refLon float64) (lat, lon float64) {
	const earthRadiusM = earthRadiusKm * 1000

	lat = refLat + toDegrees(y/earthRadiusM)
	lon = refLon + toDegrees(x/(earthRadiusM*math.Cos(toRadians(refLat))))

	return lat, lon
}

// NewLineString builds a GeoJSON LineString geometry from an ordered path of
// (lat, lon) points, converting to GeoJSON's [lon, lat] coordinate order.
func NewLineString(path []Point) *geojson.Geometry {
	coords := make([][]float64, len(path))
	for i, p := range path {
		coords[i] = []float64{p.Lon, p.Lat}
	}

	return geojson.NewLineStringGeometry(coords)
}

// PointsFromGeometry extracts a path of (lat, lon) points from a GeoJSON
// LineString geometry, converting back from [lon, lat] order. Returns nil if
// geom is nil or not a LineString.
func PointsFromGeometry(geom *geojson.Geometry) []Point {
	if geom == nil || !geom.IsLineString() {
		return nil
	}

	points := make([]Point, len(geom.LineString))
	for i, c := range geom.LineString {
		points[i] = Point{Lat: c[1], Lon: c[0]}
	}

	return points
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
