package routesolver

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/ghostroute/tacmap"
)

// edgeWeightFn extracts the scalar weight RouteSolver minimizes for a given
// edge: distance_km, travel_time_hours, the mean-risk proxy (detection_base
// * cargo_value/10 * killzone_penalty), per spec.md §4.4, or a penalized
// variant keyed by endpoints (strategy's diverse-route padding).
type edgeWeightFn func(tacmap.Edge) float64

// dijkstraResult holds per-node distances and predecessors from a single
// source, generalized from dijkstra/dijkstra.go's (dist, prev) maps to int
// node IDs and float64 weights.
type dijkstraResult struct {
	dist map[int]float64
	prev map[int]int
	seen map[int]bool // prev[v] is meaningful only when seen[v]
}

// nodeItem pairs a node with its current tentative distance. Stored in a
// lazy-decrease-key min-heap: stale entries are dropped on pop by checking
// the finalized set, exactly as dijkstra/dijkstra.go's nodePQ.
type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runDijkstra computes shortest weighted distances from source to every
// reachable node in g, using weightFn to score each edge. Forbidden edges
// (tacmap.EdgeAttrs.Forbidden()) are treated as impassable walls, matching
// dijkstra/dijkstra.go's InfEdgeThreshold policy.
func runDijkstra(g *tacmap.Graph, source int, weightFn edgeWeightFn) dijkstraResult {
	dist := make(map[int]float64)
	prev := make(map[int]int)
	seen := make(map[int]bool)
	visited := make(map[int]bool)

	for _, id := range g.NodeIDs() {
		dist[id] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.OutEdges(u) {
			if e.Attrs.Forbidden() {
				continue
			}

			w := weightFn(e)
			if w < 0 {
				w = 0
			}

			newDist := d + w
			if newDist >= dist[e.To] {
				continue
			}

			dist[e.To] = newDist
			prev[e.To] = u
			seen[e.To] = true
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dijkstraResult{dist: dist, prev: prev, seen: seen}
}

// reconstructPath walks dr.prev backward from destination to source. It
// returns nil if destination is unreachable (spec.md §7's NoPath case).
func reconstructPath(dr dijkstraResult, source, destination int) []int {
	if destination != source && !dr.seen[destination] {
		return nil
	}
	if math.IsInf(dr.dist[destination], 1) {
		return nil
	}

	path := []int{destination}
	cur := destination
	for cur != source {
		parent, ok := dr.prev[cur]
		if !ok {
			return nil
		}
		path = append(path, parent)
		cur = parent
	}

	// Reverse in place: path was built destination -> source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
