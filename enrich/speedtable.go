package enrich

import "github.com/katalvlaran/ghostroute/tacmap"

// baseSpeedKmh is the clear-weather speed table per road type, grounded on
// ghost_supply/perception/terrain.py's road-classification speed bands.
var baseSpeedKmh = map[tacmap.RoadType]float64{
	tacmap.RoadPrimary:   80,
	tacmap.RoadSecondary: 60,
	tacmap.RoadTertiary:  45,
	tacmap.RoadTrack:     30,
	tacmap.RoadPath:      15,
	tacmap.RoadOffroad:   10,
}

// roadSpeedFactor and offroadSpeedFactor mirror
// ghost_supply/perception/weather.py's WEATHER_IMPACT table: paved roads and
// off-road/track surfaces degrade at different rates per condition.
var roadSpeedFactor = map[WeatherCondition]float64{
	WeatherClear:      1.0,
	WeatherRain:       0.85,
	WeatherSnow:       0.6,
	WeatherFog:        0.9,
	WeatherRasputitsa: 0.7,
}

var offroadSpeedFactor = map[WeatherCondition]float64{
	WeatherClear:      1.0,
	WeatherRain:       0.6,
	WeatherSnow:       0.4,
	WeatherFog:        0.85,
	WeatherRasputitsa: 0.05, // "off-road nearly impassable" (GLOSSARY: Rasputitsa)
}

// DefaultSpeedWeatherTable is the built-in SpeedWeatherTable used when no
// custom implementation is supplied via WithSpeedWeatherTable.
type DefaultSpeedWeatherTable struct{}

// SpeedKmh looks up the clear-weather base speed for roadType and applies
// the weather's road or off-road speed factor, per spec.md §4.1.
func (DefaultSpeedWeatherTable) SpeedKmh(roadType tacmap.RoadType, weather WeatherCondition) float64 {
	base, ok := baseSpeedKmh[roadType]
	if !ok {
		base = baseSpeedKmh[tacmap.RoadTrack]
	}

	var factor float64
	switch roadType {
	case tacmap.RoadPrimary, tacmap.RoadSecondary, tacmap.RoadTertiary:
		factor, ok = roadSpeedFactor[weather]
	default:
		factor, ok = offroadSpeedFactor[weather]
	}
	if !ok {
		factor = 1.0
	}

	return base * factor
}

// slopeFactor implements the slope-band lookup from spec.md §4.1:
// {<5%:1.0, 5-10%:0.9, 10-15%:0.7, 15-20%:0.5, >=20%:0.3}.
func slopeFactor(band string) float64 {
	switch band {
	case "<5":
		return 1.0
	case "5-10":
		return 0.9
	case "10-15":
		return 0.7
	case "15-20":
		return 0.5
	default: // ">=20"
		return 0.3
	}
}

// highwayToRoadType derives RoadType from an OSM-style "highway" tag per
// spec.md §4.1's lookup table.
func highwayToRoadType(highway string) tacmap.RoadType {
	switch highway {
	case "motorway", "trunk", "primary":
		return tacmap.RoadPrimary
	case "secondary":
		return tacmap.RoadSecondary
	case "tertiary", "unclassified", "residential":
		return tacmap.RoadTertiary
	case "track", "service":
		return tacmap.RoadTrack
	case "path", "footway", "cycleway":
		return tacmap.RoadPath
	default:
		return tacmap.RoadTrack
	}
}
