package enrich

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/tacmap"
)

const (
	defaultGridDim = 7

	// Fixed synthetic-node attributes, per spec.md §3.
	depotSpeedKmh          = 30.0
	depotDetectionBase     = 0.2
	frontlineSpeedKmh      = 20.0
	frontlineDetectionBase = 0.15

	// minKillzoneRadiusKm guards against a zero-radius KillZone producing a
	// division by zero in the piecewise penalty bands.
	minKillzoneRadiusKm = 1e-6
)

// GraphEnricher transforms a raw road multigraph into the single-edge
// attributed graph every solver consumes, and re-enriches it between
// solves when mission context (weather, time, kill zones) changes.
//
// Grounded on lvlath/builder's Constructor closures (builder/impl_grid.go):
// Simplify/AttachSynthetic/EnrichAll play the role of a Constructor, but
// operate over an existing tacmap.Graph rather than building one from a
// single call, matching spec.md §5's "mutate in place between solves"
// lifecycle.
type GraphEnricher struct {
	cfg enricherConfig

	// highway remembers each edge's raw OSM tag, consulted by EnrichAll to
	// re-derive RoadType without widening tacmap.EdgeAttrs into a dynamic
	// attribute bag (see DESIGN.md, "dynamic edge attribute bags").
	highway map[[2]int]string
}

// NewGraphEnricher builds a GraphEnricher from the supplied Options.
func NewGraphEnricher(opts ...Option) *GraphEnricher {
	cfg := newEnricherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &GraphEnricher{cfg: cfg, highway: make(map[[2]int]string)}
}

// rawEdgeKey groups raw edges by ordered node pair.
type rawEdgeKey struct {
	from, to int
}

// Simplify reduces a raw directed multigraph to a single-edge-per-direction
// tacmap.Graph, per spec.md §4.1: "for each ordered node pair (u,v) with
// >=1 raw edge, choose the edge whose geometry is present and whose raw
// length is minimum; fall back to plain minimum length when no geometry
// exists."
func (ge *GraphEnricher) Simplify(raw RawGraph) (*tacmap.Graph, error) {
	if len(raw.Nodes) == 0 {
		return nil, ErrTooFewNodes
	}

	g := tacmap.NewGraph()
	for _, rn := range raw.Nodes {
		if err := g.AddNode(tacmap.Node{
			ID:       rn.ID,
			Position: geo.Point{Lat: rn.Lat, Lon: rn.Lon},
			Role:     tacmap.RoleRoad,
		}); err != nil {
			return nil, fmt.Errorf("enrich: Simplify: %w", err)
		}
	}

	groups := make(map[rawEdgeKey][]RawEdge)
	keys := make([]rawEdgeKey, 0)
	for _, re := range raw.Edges {
		k := rawEdgeKey{re.From, re.To}
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], re)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	for _, k := range keys {
		best := chooseBestRawEdge(groups[k])

		distanceKm := best.LengthM / 1000.0
		if distanceKm <= 0 {
			continue // zero-length raw edges cannot satisfy ErrInvalidDistance
		}

		attrs := tacmap.EdgeAttrs{
			DistanceKm:      distanceKm,
			RoadType:        highwayToRoadType(best.Highway),
			BaseSpeedKmh:    baseSpeedKmh[highwayToRoadType(best.Highway)],
			KillzonePenalty: 1,
		}
		if len(best.Geometry) > 0 {
			attrs.Geometry = geo.NewLineString(best.Geometry)
		}
		attrs.TravelTimeHours = travelTimeHours(attrs.DistanceKm, attrs.BaseSpeedKmh)

		if err := g.AddEdge(k.from, k.to, attrs); err != nil {
			return nil, fmt.Errorf("enrich: Simplify: %w", err)
		}
		ge.highway[[2]int{k.from, k.to}] = best.Highway
	}

	return g, nil
}

// chooseBestRawEdge implements the tie-break rule in spec.md §4.1.
func chooseBestRawEdge(candidates []RawEdge) RawEdge {
	best := candidates[0]
	bestHasGeom := len(best.Geometry) > 0

	for _, c := range candidates[1:] {
		hasGeom := len(c.Geometry) > 0
		switch {
		case hasGeom && !bestHasGeom:
			best, bestHasGeom = c, true
		case hasGeom == bestHasGeom && c.LengthM < best.LengthM:
			best = c
		}
	}

	return best
}

// travelTimeHours implements spec.md §4.1's sentinel rule: 999 when speed
// is zero (should not occur post-validation, guarded defensively here
// because EnrichAll recomputes this on every pass).
func travelTimeHours(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 999
	}

	return distanceKm / speedKmh
}

// AttachSynthetic connects a synthetic depot or frontline point to its
// nearest existing node via two antiparallel edges with the fixed
// attributes from spec.md §3, and returns the new node's ID.
func (ge *GraphEnricher) AttachSynthetic(g *tacmap.Graph, role tacmap.RoleTag, pos geo.Point) (int, error) {
	nearest, found := nearestNode(g, pos)
	if !found {
		return 0, ErrNoNearestNode
	}

	newID := g.MaxNodeID() + 1
	g.UpsertNode(tacmap.Node{ID: newID, Position: pos, Role: role})

	var (
		roadType      tacmap.RoadType
		speedKmh      float64
		detectionBase float64
	)
	switch role {
	case tacmap.RoleDepot:
		roadType, speedKmh, detectionBase = tacmap.RoadTrack, depotSpeedKmh, depotDetectionBase
	case tacmap.RoleFrontline:
		roadType, speedKmh, detectionBase = tacmap.RoadPath, frontlineSpeedKmh, frontlineDetectionBase
	default:
		roadType, speedKmh, detectionBase = tacmap.RoadTrack, depotSpeedKmh, depotDetectionBase
	}

	distanceKm := geo.HaversinePoints(pos, nearest.Position)
	if distanceKm <= 0 {
		distanceKm = 0.001 // two distinct nodes cannot be truly coincident; guard ErrInvalidDistance
	}
	attrs := tacmap.EdgeAttrs{
		DistanceKm:      distanceKm,
		RoadType:        roadType,
		BaseSpeedKmh:    speedKmh,
		TravelTimeHours: travelTimeHours(distanceKm, speedKmh),
		DetectionBase:   detectionBase,
		KillzonePenalty: 1,
	}

	if err := g.AddEdge(newID, nearest.ID, attrs); err != nil {
		return 0, fmt.Errorf("enrich: AttachSynthetic: %w", err)
	}
	if err := g.AddEdge(nearest.ID, newID, attrs); err != nil {
		return 0, fmt.Errorf("enrich: AttachSynthetic: %w", err)
	}

	return newID, nil
}

// nearestNode scans every node for the closest one to pos by haversine
// distance. Linear scan is acceptable: attachment runs once per synthetic
// point per mission, not per solve.
func nearestNode(g *tacmap.Graph, pos geo.Point) (tacmap.Node, bool) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return tacmap.Node{}, false
	}

	best := ids[0]
	bestNode, _ := g.Node(best)
	bestDist := geo.HaversinePoints(pos, bestNode.Position)

	for _, id := range ids[1:] {
		n, _ := g.Node(id)
		d := geo.HaversinePoints(pos, n.Position)
		if d < bestDist {
			best, bestNode, bestDist = id, n, d
		}
	}

	return bestNode, true
}

// EnrichAll re-derives every edge's mission-dependent attributes in place,
// per spec.md §4.1's edge-enrichment pass. Road edges with a remembered
// highway tag get road_type, base_speed_kmh, and travel_time_hours
// recomputed; synthetic depot/frontline edges (no highway tag) keep their
// fixed attributes untouched.
func (ge *GraphEnricher) EnrichAll(g *tacmap.Graph, weather WeatherCondition, cargoValue float64) error {
	for _, e := range g.Edges() {
		highway, isRoadEdge := ge.highway[[2]int{e.From, e.To}]
		if !isRoadEdge {
			continue
		}

		from, err := g.Node(e.From)
		if err != nil {
			return fmt.Errorf("enrich: EnrichAll: %w", err)
		}
		to, err := g.Node(e.To)
		if err != nil {
			return fmt.Errorf("enrich: EnrichAll: %w", err)
		}

		midLat, midLon := (from.Position.Lat+to.Position.Lat)/2, (from.Position.Lon+to.Position.Lon)/2
		distanceKm := geo.HaversinePoints(from.Position, to.Position)

		roadType := highwayToRoadType(highway)
		speedKmh := ge.cfg.speedTable.SpeedKmh(roadType, weather)
		if ge.cfg.elevation != nil {
			if elevTo, ok := ge.cfg.elevation.ElevationAt(to.Position.Lat, to.Position.Lon); ok {
				if elevFrom, ok2 := ge.cfg.elevation.ElevationAt(from.Position.Lat, from.Position.Lon); ok2 {
					slopePct := geo.Slope(elevFrom, elevTo, distanceKm*1000)
					speedKmh *= slopeFactor(geo.SlopeBand(math.Abs(slopePct)))
				}
			}
		}

		visibility := 0.0
		if ge.cfg.viewshed != nil {
			visibility = ge.cfg.viewshed(midLat, midLon)
		}

		detectionBase := 0.0
		if ge.cfg.threat != nil {
			detectionBase = ge.cfg.threat.RiskAt(midLat, midLon, ge.cfg.timeOfDayUnix, roadType, weather)
		}

		penalty := ge.killzonePenalty(geo.Point{Lat: midLat, Lon: midLon})

		attrs := e.Attrs
		attrs.DistanceKm = distanceKm
		attrs.RoadType = roadType
		attrs.BaseSpeedKmh = speedKmh
		attrs.TravelTimeHours = travelTimeHours(distanceKm, speedKmh)
		attrs.Visibility = visibility
		attrs.DetectionBase = detectionBase
		attrs.KillzonePenalty = penalty

		if err := g.SetEdgeAttrs(e.From, e.To, attrs); err != nil {
			return fmt.Errorf("enrich: EnrichAll: %w", err)
		}
	}

	return nil
}

// killzonePenalty implements the piecewise function in spec.md §4.1:
//
//	d <  r          -> 1000
//	r <= d < 1.5r   -> 50 * exp(3 * (1 - (d-r)/(0.5r)))
//	1.5r <= d < 2r  -> 10
//	d >= 2r         -> 1
//
// When multiple kill zones apply, the maximum penalty wins.
func (ge *GraphEnricher) killzonePenalty(point geo.Point) float64 {
	penalty := 1.0
	for _, kz := range ge.cfg.killZones {
		r := kz.RadiusKm
		if r < minKillzoneRadiusKm {
			r = minKillzoneRadiusKm
		}
		d := geo.HaversinePoints(point, kz.Center)

		var p float64
		switch {
		case d < r:
			p = 1000
		case d < 1.5*r:
			p = 50 * math.Exp(3*(1-(d-r)/(0.5*r)))
		case d < 2*r:
			p = 10
		default:
			p = 1
		}

		if p > penalty {
			penalty = p
		}
	}

	return penalty
}
