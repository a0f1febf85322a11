package routesolver

import (
	"container/heap"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/ghostroute/risk"
	"github.com/katalvlaran/ghostroute/scenario"
	"github.com/katalvlaran/ghostroute/tacmap"
)

// bbEngine holds the search state for CVaROptimize's branch-and-bound,
// adapted from tsp/bb.go's bbEngine: deterministic DFS, an admissible
// lower bound, ascending-weight branching order, and a soft wall-clock
// budget checked every 4096 node expansions. Unlike the teacher's
// Hamiltonian-cycle search, this engine explores simple origin-to-
// destination paths and scores each completed candidate against the full
// CVaR objective rather than a single scalar edge weight.
type bbEngine struct {
	graph       *tacmap.Graph
	destination int
	scenarios   []scenario.Scenario
	cargoValue  float64
	alpha       float64
	weightTime  float64
	weightRisk  float64

	// remainingTime[v] is the admissible lower bound on travel_time_hours
	// from v to destination (precomputed once via a reverse Dijkstra).
	remainingTime map[int]float64

	deadline    time.Time
	useDeadline bool
	steps       int

	visited map[int]bool
	path    []int
	edges   []tacmap.EdgeAttrs
	timeHrs float64

	bestPath []int
	bestObj  float64
	foundAny bool
}

const bbMaxNodes = 5000 // hard safety cap on search-tree expansions, independent of the wall-clock budget

func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// CVaROptimize approximates spec.md §4.4's mixed-integer program with a
// deterministic branch-and-bound search over simple paths, scoring each
// completed path by weight_time*time_minutes + weight_risk*cvar_alpha. On
// timeout or internal search-budget exhaustion it returns the best path
// found so far, tagged MethodCVaROptimize. When the search found no path at
// all, or the best path cannot be assembled into a result, it falls back
// silently to ShortestTime and tags the result with MethodCVaRFallbackTime.
func (rs *RouteSolver) CVaROptimize(origin, destination int, cargoValue float64, scenarios []scenario.Scenario) (RouteResult, error) {
	if !rs.graph.HasNode(origin) {
		return RouteResult{}, ErrOriginNotFound
	}
	if !rs.graph.HasNode(destination) {
		return RouteResult{}, ErrDestinationNotFound
	}

	remaining := runDijkstraReverse(rs.graph, destination, func(e tacmap.Edge) float64 { return e.Attrs.TravelTimeHours })

	e := &bbEngine{
		graph:         rs.graph,
		destination:   destination,
		scenarios:     scenarios,
		cargoValue:    cargoValue,
		alpha:         rs.cfg.alpha,
		weightTime:    rs.cfg.weightTime,
		weightRisk:    rs.cfg.weightRisk,
		remainingTime: remaining,
		deadline:      time.Now().Add(rs.cfg.cvarTimeBudget),
		useDeadline:   true,
		visited:       map[int]bool{origin: true},
		path:          []int{origin},
		bestObj:       math.Inf(1),
	}

	e.search(origin)

	if !e.foundAny {
		return rs.fallbackToShortestTime(origin, destination)
	}

	result, err := rs.buildResult(e.bestPath, MethodCVaROptimize, scenarios, cargoValue)
	if err != nil {
		return rs.fallbackToShortestTime(origin, destination)
	}

	return result, nil
}

func (rs *RouteSolver) fallbackToShortestTime(origin, destination int) (RouteResult, error) {
	result, err := rs.ShortestTime(origin, destination)
	if err != nil {
		return RouteResult{}, err
	}
	result.Method = MethodCVaRFallbackTime

	return result, nil
}

// search explores simple paths depth-first from u toward e.destination,
// pruning whenever the admissible time-only lower bound cannot beat the
// current incumbent.
func (e *bbEngine) search(u int) {
	if e.deadlineCheck() {
		return
	}
	if e.steps > bbMaxNodes {
		return
	}

	if u == e.destination {
		e.evaluateLeaf()
		return
	}

	lb := e.weightTime * (e.timeHrs*60 + e.remainingTime[u]*60)
	if lb >= e.bestObj {
		return
	}

	for _, v := range e.branchOrder(u) {
		if e.visited[v] {
			continue
		}
		edge, err := e.graph.Edge(u, v)
		if err != nil || edge.Attrs.Forbidden() {
			continue
		}

		e.visited[v] = true
		e.path = append(e.path, v)
		e.edges = append(e.edges, edge.Attrs)
		e.timeHrs += edge.Attrs.TravelTimeHours

		e.search(v)

		e.timeHrs -= edge.Attrs.TravelTimeHours
		e.edges = e.edges[:len(e.edges)-1]
		e.path = e.path[:len(e.path)-1]
		e.visited[v] = false
	}
}

// branchOrder returns u's out-neighbors sorted ascending by
// travel_time_hours, index tiebreak — the same deterministic branching
// rule as tsp/bb.go's "ascending w[last->v]" order.
func (e *bbEngine) branchOrder(u int) []int {
	out := e.graph.OutEdges(u)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attrs.TravelTimeHours != out[j].Attrs.TravelTimeHours {
			return out[i].Attrs.TravelTimeHours < out[j].Attrs.TravelTimeHours
		}

		return out[i].To < out[j].To
	})

	ids := make([]int, len(out))
	for i, edge := range out {
		ids[i] = edge.To
	}

	return ids
}

func (e *bbEngine) evaluateLeaf() {
	risks := make([]float64, len(e.scenarios))
	for i, sc := range e.scenarios {
		risks[i] = risk.PathRisk(e.edges, sc, e.cargoValue)
	}
	cvar := risk.CVaR(risks, e.alpha)

	obj := e.weightTime*(e.timeHrs*60) + e.weightRisk*cvar
	if !e.foundAny || obj < e.bestObj {
		e.foundAny = true
		e.bestObj = obj
		e.bestPath = append([]int(nil), e.path...)
	}
}

// runDijkstraReverse computes, for every node v, the shortest weighted
// distance from v to destination by relaxing in-edges backward from
// destination. Used to build CVaROptimize's admissible time lower bound.
func runDijkstraReverse(g *tacmap.Graph, destination int, weightFn edgeWeightFn) map[int]float64 {
	dist := make(map[int]float64)
	for _, id := range g.NodeIDs() {
		dist[id] = math.Inf(1)
	}
	dist[destination] = 0

	visited := make(map[int]bool)
	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: destination, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.InEdges(u) {
			if e.Attrs.Forbidden() {
				continue
			}
			w := weightFn(e)
			if w < 0 {
				w = 0
			}
			newDist := d + w
			if newDist < dist[e.From] {
				dist[e.From] = newDist
				heap.Push(&pq, &nodeItem{id: e.From, dist: newDist})
			}
		}
	}

	return dist
}
