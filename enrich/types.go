package enrich

import (
	"errors"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// Sentinel errors for enrich operations.
var (
	// ErrTooFewNodes indicates a raw graph or grid request has no usable nodes.
	ErrTooFewNodes = errors.New("enrich: graph must have at least one node")

	// ErrNoNearestNode indicates a synthetic point could not be attached
	// because the road graph is empty.
	ErrNoNearestNode = errors.New("enrich: no candidate road node to attach to")

	// ErrRawGraphUnavailable signals the raw graph source failed; callers
	// should treat this as non-fatal and expect a synthetic fallback.
	ErrRawGraphUnavailable = errors.New("enrich: raw graph acquisition failed")
)

// RawNode is a vertex in the unsimplified road multigraph, as supplied by
// the upstream road-network source (spec.md §6: "node attributes (x=lon,
// y=lat)").
type RawNode struct {
	ID  int
	Lon float64
	Lat float64
}

// RawEdge is one directed arc of the unsimplified road multigraph. Several
// RawEdges may share the same (From, To) pair; Simplify reduces each such
// group to a single tacmap.Edge.
type RawEdge struct {
	From    int
	To      int
	Highway string // OSM-style tag, e.g. "primary", "track", "footway"
	// LengthM is the raw edge length in meters, independent of the
	// haversine distance later recomputed between node endpoints.
	LengthM  float64
	Geometry []geo.Point // optional; nil means a straight segment
}

// RawGraph is the directed multi-graph GraphEnricher.Simplify consumes,
// matching the external interface in spec.md §6.
type RawGraph struct {
	Nodes []RawNode
	Edges []RawEdge
}

// BoundingBox delimits the geographic extent of a raster or a synthetic
// grid fallback (spec.md §6: "bounding box {north, south, east, west}").
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether (lat, lon) falls within the box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat <= b.North && lat >= b.South && lon >= b.West && lon <= b.East
}

// ElevationRaster is a 2-D grid of elevations in meters over a BoundingBox,
// indexed per spec.md §6 ("col = ⌊(lon−west)/(east−west)·width⌋, row =
// ⌊(north−lat)/(north−south)·height⌋").
type ElevationRaster interface {
	Bounds() BoundingBox
	// ElevationAt returns the elevation in meters at (lat, lon), and false
	// if the point falls outside Bounds().
	ElevationAt(lat, lon float64) (float64, bool)
}

// ViewshedFunc reports visibility at (lat, lon) in [0,1] (spec.md §6).
// A nil ViewshedFunc is treated as "no raster": visibility is always 0.
type ViewshedFunc func(lat, lon float64) float64

// ThreatPredictor estimates detection probability at a point and time
// (spec.md §6: "risk_at(lat, lon, timestamp, road_type, weather) -> [0,1]").
type ThreatPredictor interface {
	RiskAt(lat, lon float64, timestampUnix int64, roadType tacmap.RoadType, weather WeatherCondition) float64
}

// WeatherCondition names the mission weather, grounded on
// ghost_supply/perception/weather.py's condition taxonomy.
type WeatherCondition string

const (
	WeatherClear      WeatherCondition = "clear"
	WeatherRain       WeatherCondition = "rain"
	WeatherSnow       WeatherCondition = "snow"
	WeatherFog        WeatherCondition = "fog"
	WeatherRasputitsa WeatherCondition = "rasputitsa"
)

// SpeedWeatherTable is the static (road_type, weather) -> km/h lookup from
// spec.md §6.
type SpeedWeatherTable interface {
	SpeedKmh(roadType tacmap.RoadType, weather WeatherCondition) float64
}
