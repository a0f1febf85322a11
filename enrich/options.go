package enrich

import "github.com/katalvlaran/ghostroute/tacmap"

// enricherConfig holds every perception collaborator GraphEnricher consults,
// assembled via functional Options (adapted from lvlath/builder's
// BuilderOption pattern in builder/options.go).
type enricherConfig struct {
	elevation     ElevationRaster
	viewshed      ViewshedFunc
	threat        ThreatPredictor
	speedTable    SpeedWeatherTable
	killZones     []tacmap.KillZone
	gridRows      int
	gridCols      int
	timeOfDayUnix int64
}

func newEnricherConfig() enricherConfig {
	return enricherConfig{
		speedTable: DefaultSpeedWeatherTable{},
		gridRows:   defaultGridDim,
		gridCols:   defaultGridDim,
	}
}

// Option customizes a GraphEnricher's perception collaborators.
type Option func(*enricherConfig)

// WithElevationRaster attaches the elevation source used for slope lookup.
// A nil raster (the default) disables slope modulation.
func WithElevationRaster(r ElevationRaster) Option {
	return func(c *enricherConfig) { c.elevation = r }
}

// WithViewshed attaches the visibility function sampled at edge midpoints.
// A nil function (the default) makes every edge's visibility 0, per
// spec.md §4.1 ("0 if no raster").
func WithViewshed(fn ViewshedFunc) Option {
	return func(c *enricherConfig) { c.viewshed = fn }
}

// WithThreatPredictor attaches the detection-probability model. Panics on
// nil. Without a predictor (the default), EnrichAll sets every road edge's
// detection_base to 0.
func WithThreatPredictor(p ThreatPredictor) Option {
	if p == nil {
		panic("enrich: WithThreatPredictor(nil)")
	}
	return func(c *enricherConfig) { c.threat = p }
}

// WithSpeedWeatherTable overrides the default (road_type, weather) -> km/h
// lookup. Panics on nil.
func WithSpeedWeatherTable(t SpeedWeatherTable) Option {
	if t == nil {
		panic("enrich: WithSpeedWeatherTable(nil)")
	}
	return func(c *enricherConfig) { c.speedTable = t }
}

// WithKillZones sets the immutable kill-zone list consulted by the
// killzone_penalty piecewise function (spec.md §4.1).
func WithKillZones(zones []tacmap.KillZone) Option {
	return func(c *enricherConfig) {
		c.killZones = make([]tacmap.KillZone, len(zones))
		copy(c.killZones, zones)
	}
}

// WithGridFallbackSize overrides the synthetic grid fallback's dimensions
// (default 7x7, per spec.md §4.1). Panics if either dimension is below 2.
func WithGridFallbackSize(rows, cols int) Option {
	if rows < 2 || cols < 2 {
		panic("enrich: WithGridFallbackSize(rows<2 || cols<2)")
	}
	return func(c *enricherConfig) { c.gridRows, c.gridCols = rows, cols }
}

// WithMissionTime sets the Unix timestamp enrichment passes to the threat
// predictor (spec.md §4.1: "temporal-threat-multiplier").
func WithMissionTime(unix int64) Option {
	return func(c *enricherConfig) { c.timeOfDayUnix = unix }
}
