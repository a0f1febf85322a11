package tacmap

import (
	"errors"

	geojson "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/ghostroute/geo"
)

// Sentinel errors for tacmap operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("tacmap: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("tacmap: edge not found")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("tacmap: duplicate node ID")

	// ErrInvalidDistance indicates a non-positive distance_km was supplied.
	ErrInvalidDistance = errors.New("tacmap: distance_km must be > 0")

	// ErrInvalidSpeed indicates a non-positive base_speed_kmh was supplied.
	ErrInvalidSpeed = errors.New("tacmap: base_speed_kmh must be > 0")

	// ErrSelfLoop indicates an edge was added from a node to itself.
	ErrSelfLoop = errors.New("tacmap: self-loops are not permitted")

	// ErrEmptyGraph indicates an operation requires at least one node.
	ErrEmptyGraph = errors.New("tacmap: graph has no nodes")
)

// RoleTag classifies a Node per spec.md §3: road nodes come from the raw
// road graph; depot and frontline nodes are synthetic, attached by
// GraphEnricher.
type RoleTag string

const (
	RoleRoad      RoleTag = "road"
	RoleDepot     RoleTag = "depot"
	RoleFrontline RoleTag = "frontline"
)

// RoadType classifies an Edge per spec.md §3/§4.1.
type RoadType string

const (
	RoadPrimary   RoadType = "primary"
	RoadSecondary RoadType = "secondary"
	RoadTertiary  RoadType = "tertiary"
	RoadTrack     RoadType = "track"
	RoadPath      RoadType = "path"
	RoadOffroad   RoadType = "offroad"
)

// killzoneForbiddenPenalty marks an edge as effectively impassable
// (spec.md §3 invariant: killzone_penalty ≥ 1000 ⇒ forbidden).
const killzoneForbiddenPenalty = 1000.0

// Node is a vertex in the attributed transport graph: an integer ID, a
// geographic position, and an optional role tag (spec.md §3).
type Node struct {
	ID       int
	Position geo.Point
	Role     RoleTag
}

// EdgeAttrs holds every attribute an Edge must carry per spec.md §3. It
// replaces the dynamic key/value attribute bags of the original Python
// prototype (networkx edge data dicts) with a fixed record, eliminating
// key-typo bugs and making solver data dependencies explicit (spec.md §9).
type EdgeAttrs struct {
	DistanceKm       float64
	RoadType         RoadType
	BaseSpeedKmh     float64
	TravelTimeHours  float64
	Visibility       float64
	DetectionBase    float64
	KillzonePenalty  float64
	// Geometry is the ordered sequence of (lat, lon) points along the edge.
	// Nil means the edge is a straight segment between its endpoints.
	Geometry *geojson.Geometry
}

// Forbidden reports whether the edge's killzone penalty marks it as
// effectively impassable (spec.md §3: "values ≥ 1000 mark edges effectively
// forbidden").
func (a EdgeAttrs) Forbidden() bool {
	return a.KillzonePenalty >= killzoneForbiddenPenalty
}

// Edge is a directed connection between two nodes, carrying EdgeAttrs.
type Edge struct {
	From  int
	To    int
	Attrs EdgeAttrs
}

// KillZone is a disk-shaped danger area built once per planning session from
// clustered historical incidents (spec.md §3); immutable after construction.
type KillZone struct {
	ID            string
	Center        geo.Point
	RadiusKm      float64
	NumIncidents  int
	AvgCasualties float64
}
