package enrich

import (
	"fmt"

	"github.com/katalvlaran/ghostroute/geo"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// FallbackGrid synthesizes a rows x cols grid graph covering bounds when
// raw graph acquisition fails (spec.md §4.1: "synthesize a grid graph (7x7
// by default)... with primary roads on the central row/column and
// secondary elsewhere"). rows/cols default to 7 unless overridden by
// WithGridFallbackSize.
//
// Adapted directly from lvlath/builder's Grid constructor
// (builder/impl_grid.go): row-major vertex emission with 4-neighborhood
// edges to right/bottom neighbors, generalized from string "r,c" IDs and
// int64 weights to tacmap.Node positions (projected from a local flat
// metric via geo.MetersToLatLon) and tacmap.EdgeAttrs.
func (ge *GraphEnricher) FallbackGrid(bounds BoundingBox) (*tacmap.Graph, error) {
	rows, cols := ge.cfg.gridRows, ge.cfg.gridCols
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("enrich: FallbackGrid: rows=%d cols=%d: %w", rows, cols, ErrTooFewNodes)
	}

	refLat, refLon := (bounds.North+bounds.South)/2, (bounds.East+bounds.West)/2

	// Span of the box in the flat local-metric projection (y increases
	// northward, matching geo.LatLonToMeters' convention).
	xMin, yMin := geo.LatLonToMeters(bounds.South, bounds.West, refLat, refLon)
	xMax, yMax := geo.LatLonToMeters(bounds.North, bounds.East, refLat, refLon)
	stepX := (xMax - xMin) / float64(cols-1)
	stepY := (yMax - yMin) / float64(rows-1)

	g := tacmap.NewGraph()
	centralRow, centralCol := rows/2, cols/2

	id := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := xMin + float64(c)*stepX
			y := yMin + float64(r)*stepY
			lat, lon := geo.MetersToLatLon(x, y, refLat, refLon)
			if err := g.AddNode(tacmap.Node{ID: id(r, c), Position: geo.Point{Lat: lat, Lon: lon}, Role: tacmap.RoleRoad}); err != nil {
				return nil, fmt.Errorf("enrich: FallbackGrid: %w", err)
			}
		}
	}

	roadTypeFor := func(r, c int) tacmap.RoadType {
		if r == centralRow || c == centralCol {
			return tacmap.RoadPrimary
		}

		return tacmap.RoadSecondary
	}

	addPair := func(r1, c1, r2, c2 int) error {
		u, v := id(r1, c1), id(r2, c2)
		nu, _ := g.Node(u)
		nv, _ := g.Node(v)
		distanceKm := geo.HaversinePoints(nu.Position, nv.Position)
		if distanceKm <= 0 {
			distanceKm = 0.001
		}

		rt := roadTypeFor(r1, c1)
		if rtv := roadTypeFor(r2, c2); rtv == tacmap.RoadPrimary {
			rt = tacmap.RoadPrimary
		}
		speedKmh := baseSpeedKmh[rt]

		attrs := tacmap.EdgeAttrs{
			DistanceKm:      distanceKm,
			RoadType:        rt,
			BaseSpeedKmh:    speedKmh,
			TravelTimeHours: travelTimeHours(distanceKm, speedKmh),
			KillzonePenalty: 1,
		}
		if err := g.AddEdge(u, v, attrs); err != nil {
			return err
		}

		return g.AddEdge(v, u, attrs)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := addPair(r, c, r, c+1); err != nil {
					return nil, fmt.Errorf("enrich: FallbackGrid: %w", err)
				}
			}
			if r+1 < rows {
				if err := addPair(r, c, r+1, c); err != nil {
					return nil, fmt.Errorf("enrich: FallbackGrid: %w", err)
				}
			}
		}
	}

	return g, nil
}
